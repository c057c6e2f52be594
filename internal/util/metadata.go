package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/okmtz/tsk-cli/internal/model"
	log "github.com/sirupsen/logrus"
)

const (
	metadataFileName = "metadata.json"
	metadataS3Key    = "data/metadata.json"
)

// GenerateMetadata walks the data directory and maps each file's relative
// path to its modification time.
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warnf("Failed to access path: %s (%v)", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			log.Warnf("Failed to get relative path for: %s (%v)", path, err)
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

// MetadataPath returns where the sync metadata lives inside the data dir.
func MetadataPath(config model.Config) string {
	return filepath.Join(config.DataDir, metadataFileName)
}

func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal metadata.json: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write metadata.json: %w", err)
	}

	log.Debugf("metadata.json updated: %s", metadataPath)
	return nil
}

func LoadMetadata(metadataPath string) (map[string]string, error) {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to read metadata.json: %w", err)
	}

	var metadata map[string]string
	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to parse metadata.json: %w", err)
	}

	return metadata, nil
}

func UploadMetadataToS3(s3Client *s3.Client, config model.Config) error {
	metadataPath := MetadataPath(config)

	file, err := os.Open(metadataPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open %s: %w", metadataPath, err)
	}
	defer file.Close()

	log.Infof("Uploading %s to S3...", metadataS3Key)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(metadataS3Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", metadataS3Key, err)
	}

	log.Infof("%s uploaded to S3", metadataS3Key)
	return nil
}

// FetchMetadataFromS3 reads the remote metadata without touching the local
// copy. Callers persist it themselves once their transfer has succeeded.
func FetchMetadataFromS3(s3Client *s3.Client, config model.Config) (map[string]string, error) {
	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(metadataS3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			log.Warnf("No %s found on S3, returning empty metadata", metadataS3Key)
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to download %s from S3: %w", metadataS3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read %s from S3: %w", metadataS3Key, err)
	}

	var metadata map[string]string
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("❌ Failed to parse remote %s: %w", metadataS3Key, err)
	}

	log.Debugf("%s fetched from S3 (%d entries)", metadataS3Key, len(metadata))
	return metadata, nil
}

// DetectChanges compares local and remote metadata. source "local" lists
// files to push, "s3" lists files to pull. Timestamps within one second are
// treated as equal to absorb filesystem precision differences.
func DetectChanges(localMeta, remoteMeta map[string]string, source string) []string {
	var filesToSync []string

	for file, remoteTimeStr := range remoteMeta {
		if file == metadataFileName {
			continue
		}

		localTimeStr, exists := localMeta[file]

		if !exists {
			if source == "s3" {
				log.Infof("File missing locally, adding to sync (pull): %s", file)
				filesToSync = append(filesToSync, file)
			}
			continue
		}

		remoteTime, err := time.Parse(time.RFC3339, remoteTimeStr)
		if err != nil {
			log.Warnf("Failed to parse remote timestamp for %s: %v", file, err)
			continue
		}

		localTime, err := time.Parse(time.RFC3339, localTimeStr)
		if err != nil {
			log.Warnf("Failed to parse local timestamp for %s: %v", file, err)
			continue
		}

		if source == "s3" && remoteTime.After(localTime.Add(1*time.Second)) {
			log.Infof("Newer version on S3, adding to sync (pull): %s", file)
			filesToSync = append(filesToSync, file)
		}

		if source == "local" && localTime.After(remoteTime.Add(1*time.Second)) {
			log.Infof("Newer version locally, adding to sync (push): %s", file)
			filesToSync = append(filesToSync, file)
		}
	}

	if source == "local" {
		for file := range localMeta {
			if file == metadataFileName {
				continue
			}
			if _, exists := remoteMeta[file]; !exists {
				log.Infof("File missing on S3, adding to sync (push): %s", file)
				filesToSync = append(filesToSync, file)
			}
		}
	}

	return filesToSync
}
