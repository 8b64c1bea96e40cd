package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/sirupsen/logrus"
)

// objectPutter é o subconjunto do cliente S3 usado pelo publisher.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// identityGetter é o subconjunto do cliente STS usado pelo publisher.
type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".csv":  "text/csv; charset=utf-8",
	".json": "application/json",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// S3Publisher envia relatórios exportados para um bucket S3.
type S3Publisher struct {
	bucket  string
	prefix  string
	profile string
	region  string
	logger  *logrus.Logger

	mu        sync.Mutex
	s3Client  objectPutter
	stsClient identityGetter
	accountID string
}

// NewS3Publisher cria o publisher a partir da configuração.
// Os clientes AWS são criados no primeiro Publish.
func NewS3Publisher(cfg *types.Config, logger *logrus.Logger) *S3Publisher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &S3Publisher{
		bucket:  cfg.S3Bucket,
		prefix:  cfg.S3Prefix,
		profile: cfg.AWSProfile,
		region:  cfg.AWSRegion,
		logger:  logger,
	}
}

// Publish envia o arquivo em localPath e retorna a URI s3:// do objeto.
func (p *S3Publisher) Publish(ctx context.Context, localPath string) (string, error) {
	if p.bucket == "" {
		return "", fmt.Errorf("no S3 bucket configured")
	}

	if err := p.ensureClients(ctx); err != nil {
		return "", err
	}
	p.logAccount(ctx)

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer file.Close()

	key := ObjectKey(p.prefix, localPath)
	input := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType, ok := contentTypes[strings.ToLower(filepath.Ext(localPath))]; ok {
		input.ContentType = aws.String(contentType)
	}

	if _, err := p.s3Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(localPath), p.bucket, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	p.logger.WithField("uri", uri).Debug("report published")
	return uri, nil
}

// ObjectKey monta a chave do objeto: <prefix>/<nome do arquivo>.
func ObjectKey(prefix, localPath string) string {
	name := filepath.Base(localPath)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (p *S3Publisher) ensureClients(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.s3Client != nil {
		return nil
	}

	var opts []func(*config.LoadOptions) error
	if p.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(p.profile))
	}
	if p.region != "" {
		opts = append(opts, config.WithRegion(p.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	p.s3Client = s3.NewFromConfig(cfg)
	p.stsClient = sts.NewFromConfig(cfg)
	return nil
}

// logAccount registra a conta AWS usada, uma única vez. Falhas não impedem o envio.
func (p *S3Publisher) logAccount(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.accountID != "" || p.stsClient == nil {
		return
	}

	result, err := p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		p.logger.WithError(err).Warn("could not resolve AWS account")
		return
	}

	p.accountID = aws.ToString(result.Account)
	p.logger.WithFields(logrus.Fields{
		"account": p.accountID,
		"bucket":  p.bucket,
	}).Debug("publishing reports")
}
