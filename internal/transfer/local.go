// Package transfer provides the staging-transfer adapters: a filesystem
// transfer client and a zip archive service.
package transfer

import (
	"context"
	"io"
	"os"
)

// LocalClient implements the transfer contract against a locally mounted
// staging directory shared with the wallet provider.
type LocalClient struct{}

func NewLocalClient() *LocalClient {
	return &LocalClient{}
}

func (c *LocalClient) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

func (c *LocalClient) CreateDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0o755)
}

func (c *LocalClient) Upload(ctx context.Context, localPath, remotePath string) (bool, error) {
	source, err := os.Open(localPath)
	if err != nil {
		return false, err
	}
	defer source.Close()

	destination, err := os.Create(remotePath)
	if err != nil {
		return false, err
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return false, err
	}

	return true, nil
}
