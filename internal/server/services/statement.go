package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/logging"
	"github.com/dmitrijs2005/satstream/internal/server/config"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/dmitrijs2005/satstream/internal/timex"
	"github.com/google/uuid"
)

const statementURLValidity = 15 * time.Minute

// Seams for tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) *s3.PresignClient { return s3.NewPresignClient(c) }
	putObject             = func(ctx context.Context, c *s3.Client, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}
	presignGetObject = func(ctx context.Context, pc *s3.PresignClient, in *s3.GetObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, opts...)
	}
)

// StreamLister returns the caller's streams.
type StreamLister interface {
	ListStreamsForUser(ctx context.Context) ([]models.Stream, error)
}

// Statement is the exported document.
type Statement struct {
	Principal   models.Principal `json:"principal"`
	GeneratedAt uint64           `json:"generated_at"`
	Streams     []models.Stream  `json:"streams"`
}

// StatementService uploads per-user statements to S3-compatible storage.
type StatementService struct {
	streams  StreamLister
	identity IdentityResolver
	clock    timex.Clock
	config   *config.Config
	logger   logging.Logger
}

func NewStatementService(streams StreamLister, id IdentityResolver, clock timex.Clock, cfg *config.Config, logger logging.Logger) *StatementService {
	return &StatementService{
		streams:  streams,
		identity: id,
		clock:    clock,
		config:   cfg,
		logger:   logger.With("module", "statement_service"),
	}
}

func (s *StatementService) storageKey(p models.Principal) string {
	d := s.clock.Now().UTC()
	return fmt.Sprintf("statements/%s/%d/%d/%d/%v.json", p, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *StatementService) getClients(ctx context.Context) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, newS3PresignClient(client), nil
}

// Export uploads the caller's streams as JSON and returns the object key and
// a presigned GET URL valid for 15 minutes.
func (s *StatementService) Export(ctx context.Context) (string, string, error) {
	if s.config.S3Bucket == "" {
		return "", "", fmt.Errorf("%w: statement export needs an S3 bucket", common.ErrNotConfigured)
	}

	p, err := s.identity.CurrentIdentity(ctx)
	if err != nil {
		return "", "", err
	}
	streams, err := s.streams.ListStreamsForUser(ctx)
	if err != nil {
		return "", "", err
	}

	body, err := json.MarshalIndent(Statement{
		Principal:   p,
		GeneratedAt: timex.Unix(s.clock),
		Streams:     streams,
	}, "", "  ")
	if err != nil {
		return "", "", err
	}

	client, presignClient, err := s.getClients(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := s.storageKey(p)

	if err := putObject(ctx, client, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", "", fmt.Errorf("upload statement: %w", err)
	}

	req, err := presignGetObject(ctx, presignClient, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(statementURLValidity))
	if err != nil {
		return "", "", fmt.Errorf("presign statement: %w", err)
	}

	s.logger.Info(ctx, "statement exported", "principal", p, "key", key, "streams", len(streams))
	return key, req.URL, nil
}
