package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	insightsRepo "insight-srv/internal/insights/repository"
	"insight-srv/internal/model"
	pkgMinio "insight-srv/pkg/minio"
)

// Create generates a CSV of the account's latest snapshots and uploads it.
// Generation is synchronous; the row exists in PROCESSING state only for
// the duration of the request so a crash leaves an inspectable record.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input export.CreateInput) (export.CreateOutput, error) {
	// Step 1: Ownership
	if _, err := uc.accountUC.GetDetail(ctx, sc, input.AccountID); err != nil {
		return export.CreateOutput{}, err
	}

	// Step 2: Load everything to export before creating the row
	items, _, err := uc.insightsRepo.ListMediaWithSnapshots(ctx, input.AccountID, insightsRepo.ListOptions{})
	if err != nil {
		return export.CreateOutput{}, fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(items) == 0 {
		return export.CreateOutput{}, export.ErrNoData
	}

	exp, err := uc.repo.Create(ctx, repository.CreateOptions{
		AccountID:   input.AccountID,
		RequestedBy: sc.UserID,
	})
	if err != nil {
		return export.CreateOutput{}, fmt.Errorf("failed to create export: %w", err)
	}

	// Step 3: Build the CSV
	body, rowCount, err := buildCSV(items)
	if err != nil {
		uc.failExport(ctx, exp.ID, err)
		return export.CreateOutput{}, fmt.Errorf("failed to build csv: %w", err)
	}

	// Step 4: Upload to object storage
	objectKey := fmt.Sprintf("exports/%s/%s.csv", input.AccountID, exp.ID)
	info, err := uc.minioClient.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  uc.cfg.Bucket,
		ObjectName:  objectKey,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "text/csv",
	})
	if err != nil {
		uc.failExport(ctx, exp.ID, err)
		return export.CreateOutput{}, fmt.Errorf("failed to upload export: %w", err)
	}

	// Step 5: Flip the row to COMPLETED
	if err := uc.repo.MarkCompleted(ctx, repository.MarkCompletedOptions{
		ID:            exp.ID,
		ObjectKey:     objectKey,
		FileSizeBytes: info.Size,
		RowCount:      rowCount,
	}); err != nil {
		return export.CreateOutput{}, fmt.Errorf("failed to complete export: %w", err)
	}

	// Step 6: Presign the download link
	url, err := uc.minioClient.GetPresignedDownloadURL(ctx, uc.cfg.Bucket, objectKey, export.DownloadURLTTL)
	if err != nil {
		return export.CreateOutput{}, fmt.Errorf("failed to presign download url: %w", err)
	}

	uc.l.Infof(ctx, "export.usecase.Create: export %s for account %s completed (%d rows, %d bytes)",
		exp.ID, input.AccountID, rowCount, info.Size)
	return export.CreateOutput{
		ID:          exp.ID,
		Status:      model.ExportStatusCompleted,
		RowCount:    rowCount,
		DownloadURL: url,
	}, nil
}

// GetDetail returns one export record with a fresh download link when completed.
func (uc *implUseCase) GetDetail(ctx context.Context, sc model.Scope, exportID string) (export.GetDetailOutput, error) {
	exp, err := uc.repo.GetByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return export.GetDetailOutput{}, export.ErrNotFound
		}
		return export.GetDetailOutput{}, fmt.Errorf("failed to get export: %w", err)
	}
	if exp.RequestedBy != sc.UserID {
		return export.GetDetailOutput{}, export.ErrNotFound
	}

	out := export.GetDetailOutput{
		ID:            exp.ID,
		AccountID:     exp.AccountID,
		Status:        exp.Status,
		ErrorMessage:  exp.ErrorMessage,
		RowCount:      exp.RowCount,
		FileSizeBytes: exp.FileSizeBytes,
		CompletedAt:   exp.CompletedAt,
		CreatedAt:     exp.CreatedAt,
	}

	if exp.Status == model.ExportStatusCompleted && exp.ObjectKey != "" {
		url, err := uc.minioClient.GetPresignedDownloadURL(ctx, uc.cfg.Bucket, exp.ObjectKey, export.DownloadURLTTL)
		if err != nil {
			return export.GetDetailOutput{}, fmt.Errorf("failed to presign download url: %w", err)
		}
		out.DownloadURL = url
	}
	return out, nil
}

func (uc *implUseCase) failExport(ctx context.Context, exportID string, cause error) {
	if err := uc.repo.MarkFailed(ctx, exportID, cause.Error()); err != nil {
		uc.l.Errorf(ctx, "export.usecase.failExport: failed to mark export %s failed: %v", exportID, err)
	}
}
