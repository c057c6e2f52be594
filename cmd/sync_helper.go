package cmd

import (
	"fmt"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/util"
)

// SyncWithS3 mirrors the data dir and an S3 bucket by comparing metadata
// snapshots (relative path → mtime) and transferring only the files that
// differ. Metadata is only written after a transfer succeeds, so a failed
// sync can be retried and still sees the same diff.
func SyncWithS3(config model.Config, direction string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	switch direction {
	case "pull":
		fmt.Println("🔄 Downloading metadata from S3...")

		localMetadata, err := util.LoadMetadata(util.MetadataPath(config))
		if err != nil {
			return fmt.Errorf("❌ Failed to load local metadata: %w", err)
		}

		remoteMetadata, err := util.FetchMetadataFromS3(s3Client, config)
		if err != nil {
			return err
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			fmt.Println("✅ No changes detected. Everything is up-to-date.")
			return nil
		}

		fmt.Println("🔄 Downloading changed files from S3...")
		if err := util.SyncFilesToS3(config, "pull", fileList); err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}

		if err := util.SaveMetadata(util.MetadataPath(config), remoteMetadata); err != nil {
			return err
		}

		fmt.Println("✅ Sync completed successfully.")
		return nil

	case "push":
		fmt.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata: %w", err)
		}

		remoteMetadata, err := util.FetchMetadataFromS3(s3Client, config)
		if err != nil {
			return err
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			fmt.Println("✅ No changes detected. Everything is up-to-date.")
			return nil
		}

		fmt.Println("🔄 Uploading changed files to S3...")
		if err := util.SyncFilesToS3(config, "push", fileList); err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}

		// The uploaded metadata must reflect the local walk, not the stale
		// remote copy, or every push re-transfers the same files.
		if err := util.SaveMetadata(util.MetadataPath(config), localMetadata); err != nil {
			return err
		}
		if err := util.UploadMetadataToS3(s3Client, config); err != nil {
			return err
		}

		fmt.Println("✅ Sync completed successfully.")
		return nil
	}

	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus prints what a push and a pull would transfer, without
// writing anything locally or remotely.
func ShowSyncStatus(config model.Config) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, err := util.GenerateMetadata(config.DataDir)
	if err != nil {
		return fmt.Errorf("❌ Failed to generate metadata: %w", err)
	}

	remoteMetadata, err := util.FetchMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	pushes := util.DetectChanges(localMetadata, remoteMetadata, "local")
	pulls := util.DetectChanges(localMetadata, remoteMetadata, "s3")

	if len(pushes) == 0 && len(pulls) == 0 {
		fmt.Println("✅ Local and S3 are in sync.")
		return nil
	}

	if len(pushes) > 0 {
		fmt.Println("📌 Files to push:")
		for _, file := range pushes {
			fmt.Println("   -", file)
		}
	}
	if len(pulls) > 0 {
		fmt.Println("📌 Files to pull:")
		for _, file := range pulls {
			fmt.Println("   -", file)
		}
	}

	return nil
}
