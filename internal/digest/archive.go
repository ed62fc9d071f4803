package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"feedbackservice/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Record is the archived copy of one digest run.
type Record struct {
	RunID    string            `json:"run_id"`
	Trigger  string            `json:"trigger,omitempty"`
	Summary  string            `json:"summary"`
	Stats    model.DigestStats `json:"stats"`
	Delivery DeliveryResult    `json:"delivery"`
	At       time.Time         `json:"at"`
}

func ArchiveKey(runID string, at time.Time) string {
	return fmt.Sprintf("digests/%s/%s.json", at.UTC().Format("2006/01/02"), runID)
}

type S3Archiver struct {
	client ObjectPutter
	bucket string
}

func NewS3Archiver(client ObjectPutter, bucket string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket}
}

func (a *S3Archiver) Archive(ctx context.Context, rec Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal digest record: %w", err)
	}
	key := ArchiveKey(rec.RunID, rec.At)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put %s: %w", key, err)
	}
	return key, nil
}
