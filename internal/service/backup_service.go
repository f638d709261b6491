package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/dtalero78/siigo-retiros/internal/config"
	"github.com/dtalero78/siigo-retiros/internal/repository"
)

// BackupService dumps the full response and roster tables as a JSON
// snapshot, either to a local directory or to a MinIO bucket.
type BackupService struct {
	cfg       config.BackupConfig
	responses *repository.ResponseRepository
	users     *repository.UserRepository
	minio     *minio.Client
	log       *zap.Logger
}

// backupPayload is the snapshot envelope. BackupID ties log lines and
// stored objects to one run.
type backupPayload struct {
	BackupID  string      `json:"backupId"`
	CreatedAt time.Time   `json:"createdAt"`
	Responses interface{} `json:"responses"`
	Users     interface{} `json:"users"`
}

func NewBackupService(cfg config.BackupConfig, responses *repository.ResponseRepository, users *repository.UserRepository, log *zap.Logger) (*BackupService, error) {
	s := &BackupService{cfg: cfg, responses: responses, users: users, log: log}

	if cfg.Type == "minio" {
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		s.minio = client
	}
	return s, nil
}

// Run takes one snapshot and stores it at the configured target.
// Returns the object name (or file path) the snapshot was written to.
func (s *BackupService) Run(ctx context.Context) (string, error) {
	responses, err := s.responses.FindAllForAggregation("")
	if err != nil {
		return "", err
	}
	allUsers, _, err := s.users.FindAll(1, 100000)
	if err != nil {
		return "", err
	}

	payload := backupPayload{
		BackupID:  uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Responses: responses,
		Users:     allUsers,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("backup-%s.json", payload.CreatedAt.Format("20060102-150405"))

	var location string
	switch s.cfg.Type {
	case "minio":
		location, err = s.storeMinio(ctx, name, data)
	default:
		location, err = s.storeLocal(name, data)
	}
	if err != nil {
		return "", err
	}

	s.log.Info("backup stored",
		zap.String("backup_id", payload.BackupID),
		zap.String("location", location),
		zap.Int("responses", len(responses)),
		zap.Int("users", len(allUsers)))
	return location, nil
}

func (s *BackupService) storeLocal(name string, data []byte) (string, error) {
	dir := s.cfg.LocalPath
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *BackupService) storeMinio(ctx context.Context, name string, data []byte) (string, error) {
	exists, err := s.minio.BucketExists(ctx, s.cfg.MinioBucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := s.minio.MakeBucket(ctx, s.cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return "", err
		}
	}

	_, err = s.minio.PutObject(ctx, s.cfg.MinioBucket, name,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	return s.cfg.MinioBucket + "/" + name, nil
}
