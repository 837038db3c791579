package output

import (
	"context"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.scnd.dev/open/rpcgen/common/config"
	"go.scnd.dev/open/rpcgen/package/span"
)

type Publisher struct {
	Client *minio.Client
	Bucket string
	Object string
}

// NewPublisher returns nil when no publish target is configured.
func NewPublisher(cfg *config.Publish) (*Publisher, error) {
	if cfg == nil {
		return nil, nil
	}

	// * initialize minio client
	parsed, err := url.Parse(*cfg.Endpoint)
	if err != nil {
		return nil, span.NewError(nil, "failed to parse publish endpoint", err)
	}
	client, err := minio.New(parsed.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(*cfg.AccessKey, *cfg.SecretKey, ""),
		Secure: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, span.NewError(nil, "failed to initialize minio", err)
	}

	return &Publisher{
		Client: client,
		Bucket: *cfg.Bucket,
		Object: *cfg.Object,
	}, nil
}

func (r *Publisher) Publish(ctx context.Context, content string) error {
	if r == nil {
		return nil
	}

	s, ctx := span.With(ctx, "publish")
	defer s.End()
	s.Variable("object", r.Object)

	_, err := r.Client.PutObject(ctx, r.Bucket, r.Object, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "application/typescript",
	})
	if err != nil {
		return s.Error("unable to publish client file", err)
	}

	return nil
}
