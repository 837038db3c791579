package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/rpcgen/common/config"
)

func TestWriterCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "lib", "client", "generated_client.ts")
	writer := NewWriter(path)

	require.NoError(t, writer.Write(context.Background(), "first"))
	require.NoError(t, writer.Write(context.Background(), "second"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestWriterFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte(""), 0o644))

	writer := NewWriter(filepath.Join(blocker, "generated_client.ts"))
	assert.Error(t, writer.Write(context.Background(), "content"))
}

func TestNewPublisher(t *testing.T) {
	publisher, err := NewPublisher(nil)
	require.NoError(t, err)
	assert.Nil(t, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), "content"))

	publisher, err = NewPublisher(&config.Publish{
		Endpoint:  gut.Ptr("https://storage.example.com"),
		AccessKey: gut.Ptr("access"),
		SecretKey: gut.Ptr("secret"),
		Bucket:    gut.Ptr("clients"),
		Object:    gut.Ptr("generated_client.ts"),
	})
	require.NoError(t, err)
	assert.Equal(t, "clients", publisher.Bucket)
	assert.Equal(t, "storage.example.com", publisher.Client.EndpointURL().Host)
	assert.Equal(t, "https", publisher.Client.EndpointURL().Scheme)
}
