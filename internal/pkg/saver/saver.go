package saver

import (
	"bytes"
	"context"

	"github.com/eduspeech/scorelit/internal/pkg/cmdapp"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

//ObjectSaver puts audio files into an S3 compatible object store
type ObjectSaver struct {
	client *minio.Client
	bucket string
}

//NewObjectSaver creates the saver from config
func NewObjectSaver() (*ObjectSaver, error) {
	endpoint := cmdapp.Config.GetString("minio.endpoint")
	if endpoint == "" {
		return nil, errors.New("No minio.endpoint provided")
	}
	bucket := cmdapp.Config.GetString("minio.bucket")
	if bucket == "" {
		return nil, errors.New("No minio.bucket provided")
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cmdapp.Config.GetString("minio.key"),
			cmdapp.Config.GetString("minio.secret"), ""),
		Secure: cmdapp.Config.GetBool("minio.ssl"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't init object store client")
	}
	cmdapp.Log.Infof("Object store: %s, bucket: %s", endpoint, bucket)
	return &ObjectSaver{client: client, bucket: bucket}, nil
}

//Save uploads data under path and returns the stored object path
func (s *ObjectSaver) Save(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "Can't save "+path)
	}
	cmdapp.Log.Infof("Saved %s (%d b)", path, len(data))
	return path, nil
}
