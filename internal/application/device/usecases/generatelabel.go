package usecases

import (
	"context"
	"fmt"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

// LabelGenerator encodes a device reference into a scannable label image.
// The QR implementation lives in infrastructure/label.
type LabelGenerator interface {
	GeneratePNG(content string, size int) ([]byte, error)
}

type GenerateLabelCommand struct {
	DeviceID uint
	Size     int
}

type GenerateLabelResult struct {
	DeviceID uint   `json:"device_id"`
	Content  string `json:"content"`
	PNG      []byte `json:"-"`
}

// GenerateLabelUseCase renders the QR label that sites stick on a device.
// Scanning the label pre-fills ticket creation with the device reference.
type GenerateLabelUseCase struct {
	deviceRepo device.Repository
	labels     LabelGenerator
	logger     logger.Interface
}

func NewGenerateLabelUseCase(deviceRepo device.Repository, labels LabelGenerator, logger logger.Interface) *GenerateLabelUseCase {
	return &GenerateLabelUseCase{
		deviceRepo: deviceRepo,
		labels:     labels,
		logger:     logger,
	}
}

func (uc *GenerateLabelUseCase) Execute(ctx context.Context, cmd GenerateLabelCommand) (*GenerateLabelResult, error) {
	if cmd.DeviceID == 0 {
		return nil, errors.NewValidationError("device ID is required")
	}

	size := cmd.Size
	if size <= 0 {
		size = 256
	}
	if size > 1024 {
		return nil, errors.NewValidationError("label size exceeds maximum of 1024 pixels")
	}

	dev, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	content := fmt.Sprintf("fieldserve://device/%d?sn=%s", dev.ID(), dev.SerialNumber())
	png, err := uc.labels.GeneratePNG(content, size)
	if err != nil {
		uc.logger.Errorw("failed to generate label", "error", err, "device_id", dev.ID())
		return nil, errors.NewInternalError("failed to generate label")
	}

	return &GenerateLabelResult{
		DeviceID: dev.ID(),
		Content:  content,
		PNG:      png,
	}, nil
}
