/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type configModel struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
}

func newConfigModel(config model.Config) tea.Model {
	return &configModel{
		cursor:    0,
		fields:    configFieldList(),
		config:    config,
		textInput: textinput.New(),
		editMode:  false,
	}
}

func configFieldList() []string {
	return []string{
		"DataDir", "Editor",
		"Backup.Enable", "Backup.Retention", "Backup.BackupDir",
		"Trash.Retention",
		"Sync.Enable", "Sync.Bucket", "Sync.AWSProfile", "Sync.AWSRegion",
		"Server.Addr",
		"Save & Exit",
	}
}

func (m configModel) Init() tea.Cmd {
	return nil
}

func (m *configModel) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				if err := store.SaveConfig(m.config); err != nil {
					log.Printf("⚠️ Failed to save config file: %v", err)
				}
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m configModel) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("📄 Configure tsk\n\n")

	for i, field := range m.fields {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		value := m.getFieldValue(field)

		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, value))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\n↑/↓ to move, Enter to edit, q to quit\n")
	}

	return s.String()
}

func (m configModel) getFieldValue(field string) string {
	switch field {
	case "DataDir":
		return m.config.DataDir
	case "Editor":
		return m.config.Editor
	case "Backup.Enable":
		return strconv.FormatBool(m.config.Backup.Enable)
	case "Backup.Retention":
		return strconv.Itoa(m.config.Backup.Retention)
	case "Backup.BackupDir":
		return m.config.Backup.BackupDir
	case "Trash.Retention":
		return strconv.Itoa(m.config.Trash.Retention)
	case "Sync.Enable":
		return strconv.FormatBool(m.config.Sync.Enable)
	case "Sync.Bucket":
		return m.config.Sync.Bucket
	case "Sync.AWSProfile":
		return m.config.Sync.AWSProfile
	case "Sync.AWSRegion":
		return m.config.Sync.AWSRegion
	case "Server.Addr":
		return m.config.Server.Addr
	case "Save & Exit":
		return ""
	default:
		return "UNKNOWN"
	}
}

func (m *configModel) updateConfig() {
	newValue := m.textInput.Value()

	switch m.fields[m.cursor] {
	case "DataDir":
		m.config.DataDir = newValue
	case "Editor":
		m.config.Editor = newValue
	case "Backup.Enable":
		if newBool, err := strconv.ParseBool(newValue); err == nil {
			m.config.Backup.Enable = newBool
		}
	case "Backup.Retention":
		if newInt, err := strconv.Atoi(newValue); err == nil {
			m.config.Backup.Retention = newInt
		}
	case "Backup.BackupDir":
		m.config.Backup.BackupDir = newValue
	case "Trash.Retention":
		if newInt, err := strconv.Atoi(newValue); err == nil {
			m.config.Trash.Retention = newInt
		}
	case "Sync.Enable":
		if newBool, err := strconv.ParseBool(newValue); err == nil {
			m.config.Sync.Enable = newBool
		}
	case "Sync.Bucket":
		m.config.Sync.Bucket = newValue
	case "Sync.AWSProfile":
		m.config.Sync.AWSProfile = newValue
	case "Sync.AWSRegion":
		m.config.Sync.AWSRegion = newValue
	case "Server.Addr":
		m.config.Server.Addr = newValue
	}

	if err := store.SaveConfig(m.config); err != nil {
		log.Printf("⚠️ Failed to save config file: %v", err)
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := store.GetConfigPath()
		if err != nil {
			log.Fatalf("❌ Failed to get config path: %v", err)
		}

		fmt.Println(configPath)

		// Read the file raw so `~` stays unexpanded when saved back.
		configByte, err := os.ReadFile(configPath)
		if err != nil {
			log.Printf("❌ Failed to read config file (run `tsk init` first): %v", err)
			os.Exit(1)
		}

		var config model.Config
		if err = yaml.Unmarshal(configByte, &config); err != nil {
			log.Fatalf("❌ Failed to parse YAML: %v", err)
		}

		if _, err := tea.NewProgram(newConfigModel(config)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
