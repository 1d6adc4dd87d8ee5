package s3storage

import (
	"context"
	"io"
	"regexp"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/denismitr/resizefn/internal/storage"
	"github.com/pkg/errors"
)

// valid keys consist of a render ID and a filename with a jpeg extension
var keyRx = regexp.MustCompile(`^[a-f0-9]{24}/[\w.-]+\.(jpg|jpeg)$`)

type Config struct {
	AccessKey        string
	AccessSecret     string
	AccessToken      string
	Region           string
	Endpoint         string
	S3ForcePathStyle bool
	EnableSSL        bool
}

type RemoteStorage struct {
	cfg     Config
	session *session.Session
	client  *s3.S3
}

func New(cfg Config) (*RemoteStorage, error) {
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.AccessSecret, cfg.AccessToken),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		DisableSSL:       aws.Bool(!cfg.EnableSSL),
		S3ForcePathStyle: aws.Bool(cfg.S3ForcePathStyle),
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, errors.Wrapf(storage.ErrStorageFailed, "s3 session could not be created: %v", err)
	}

	return &RemoteStorage{
		cfg:     cfg,
		session: sess,
		client:  s3.New(sess),
	}, nil
}

func (rs *RemoteStorage) Put(
	ctx context.Context,
	namespace, key, contentType string,
	source io.Reader,
) (*storage.Item, error) {
	if !isValidKey(key) {
		return nil, errors.Wrapf(storage.ErrInvalidKey, "%s", key)
	}

	if err := rs.ensureNamespace(ctx, namespace); err != nil {
		return nil, err
	}

	uploader := s3manager.NewUploader(rs.session)
	uploader.Concurrency = 1

	result, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Body:        source,
		Bucket:      aws.String(namespace),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return nil, errors.Wrapf(
			storage.ErrStorageFailed,
			"could not upload file %s to namespace %s: %v",
			key, namespace, err,
		)
	}

	return &storage.Item{
		Path: namespace + "/" + key,
		URL:  result.Location,
	}, nil
}

// Remove file from bucket
func (rs *RemoteStorage) Remove(ctx context.Context, namespace, key string) error {
	_, err := rs.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(namespace),
		Key:    aws.String(key),
	})

	if err != nil {
		return errors.Wrapf(storage.ErrStorageFailed, "could not remove file %s from bucket %s: %v", key, namespace, err)
	}

	err = rs.client.WaitUntilObjectNotExistsWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(namespace),
		Key:    aws.String(key),
	})

	if err != nil {
		return errors.Wrapf(storage.ErrStorageFailed, "could not confirm removal of file %s from bucket %s", key, namespace)
	}

	return nil
}

// ensureNamespace creates the bucket unless it already exists
func (rs *RemoteStorage) ensureNamespace(ctx context.Context, namespace string) error {
	_, err := rs.client.CreateBucketWithContext(ctx, &s3.CreateBucketInput{Bucket: aws.String(namespace)})
	if err == nil || bucketAlreadyExists(err) {
		return nil
	}

	return errors.Wrapf(storage.ErrStorageFailed, "could not create namespace %s: %v", namespace, err)
}

func bucketAlreadyExists(err error) bool {
	if aErr, ok := err.(awserr.Error); ok {
		return aErr.Code() == s3.ErrCodeBucketAlreadyExists || aErr.Code() == s3.ErrCodeBucketAlreadyOwnedByYou
	}

	return false
}

func isValidKey(key string) bool {
	return keyRx.MatchString(key)
}
