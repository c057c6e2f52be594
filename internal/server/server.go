package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
)

// Register wires up the task API routes on the provided Echo instance.
// Handlers share one mutex: every request is a load-mutate-save cycle over
// tasks.json, and concurrent writers would lose updates.
func Register(e *echo.Echo, cfg model.Config) {
	var mu sync.Mutex

	e.GET("/api/tasks", getTasks(cfg, &mu))
	e.POST("/api/tasks", postTask(cfg, &mu))
	e.POST("/api/tasks/:id/toggle", toggleTask(cfg, &mu))
	e.DELETE("/api/tasks/:id", deleteTask(cfg, &mu))
	e.GET("/healthz", healthz(cfg))
}

type tasksResponse struct {
	Tasks []model.Task `json:"tasks"`
}

type taskRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	Priority string `json:"priority"`
	Due      string `json:"due"`
}

func healthz(cfg model.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, _, err := store.LoadTasks(cfg); err != nil {
			return c.String(http.StatusServiceUnavailable, "task store unavailable")
		}
		return c.NoContent(http.StatusOK)
	}
}

func getTasks(cfg model.Config, mu *sync.Mutex) echo.HandlerFunc {
	return func(c echo.Context) error {
		mu.Lock()
		tasks, _, err := store.LoadTasks(cfg)
		mu.Unlock()
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to load tasks")
		}

		statusParam := strings.TrimSpace(c.QueryParam("status"))
		priorityParam := strings.TrimSpace(c.QueryParam("priority"))
		sourceParam := strings.TrimSpace(c.QueryParam("source"))
		overdueOnly := c.QueryParam("overdue") == "true"

		var status model.Status
		if statusParam != "" {
			status, err = model.ParseStatus(statusParam)
			if err != nil {
				return c.String(http.StatusBadRequest, err.Error())
			}
		}
		var priority model.Priority
		if priorityParam != "" {
			priority, err = model.ParsePriority(priorityParam)
			if err != nil {
				return c.String(http.StatusBadRequest, err.Error())
			}
		}
		var source model.SourceType
		if sourceParam != "" {
			source, err = model.ParseSourceType(sourceParam)
			if err != nil {
				return c.String(http.StatusBadRequest, err.Error())
			}
		}

		now := time.Now()
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Deleted || t.Archived {
				continue
			}
			if statusParam != "" && t.Status != status {
				continue
			}
			if priorityParam != "" && t.Priority != priority {
				continue
			}
			if sourceParam != "" && t.Source.Type != source {
				continue
			}
			if overdueOnly && !t.IsOverdue(now) {
				continue
			}
			filtered = append(filtered, t)
		}

		return c.JSON(http.StatusOK, tasksResponse{Tasks: filtered})
	}
}

func postTask(cfg model.Config, mu *sync.Mutex) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req taskRequest
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if strings.TrimSpace(req.Title) == "" {
			return c.String(http.StatusBadRequest, "title is required")
		}

		priority := model.PriorityNone
		if req.Priority != "" {
			var err error
			priority, err = model.ParsePriority(req.Priority)
			if err != nil {
				return c.String(http.StatusBadRequest, err.Error())
			}
		}
		due, err := model.ParseDueDate(req.Due)
		if err != nil {
			return c.String(http.StatusBadRequest, err.Error())
		}

		now := time.Now()
		task := model.Task{
			Title:      strings.TrimSpace(req.Title),
			Notes:      req.Notes,
			Status:     model.StatusPending,
			Priority:   priority,
			Source:     model.ManualSource(),
			Confidence: model.ConfidenceHigh,
			DueDate:    due,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		mu.Lock()
		task, err = store.InsertTaskToJson(task, cfg)
		mu.Unlock()
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save task")
		}

		log.Infof("api: created task #%d %q", task.SeqID, task.Title)
		return c.JSON(http.StatusCreated, task)
	}
}

func toggleTask(cfg model.Config, mu *sync.Mutex) echo.HandlerFunc {
	return func(c echo.Context) error {
		mu.Lock()
		defer mu.Unlock()

		tasks, jsonPath, err := store.LoadTasks(cfg)
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to load tasks")
		}

		idx, err := store.FindTask(tasks, c.Param("id"))
		if err != nil {
			return c.String(http.StatusNotFound, err.Error())
		}

		tasks[idx].ToggleCompletion(time.Now())
		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save tasks")
		}

		return c.JSON(http.StatusOK, tasks[idx])
	}
}

func deleteTask(cfg model.Config, mu *sync.Mutex) echo.HandlerFunc {
	return func(c echo.Context) error {
		mu.Lock()
		defer mu.Unlock()

		tasks, jsonPath, err := store.LoadTasks(cfg)
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to load tasks")
		}

		idx, err := store.FindTask(tasks, c.Param("id"))
		if err != nil {
			return c.String(http.StatusNotFound, err.Error())
		}

		tasks[idx].SetDeleted(time.Now())
		if err := store.SaveTasks(tasks, jsonPath); err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save tasks")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
