// Where: internal/infra/docker/client.go
// What: Docker SDK client constructor and image inspection.
// Why: Report what the container-build executable produced without parsing its output.
package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	units "github.com/docker/go-units"
)

var errImageRefRequired = errors.New("image reference is required")

// ImageInspector defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type ImageInspector interface {
	ImageInspect(ctx context.Context, imageID string, opts ...client.ImageInspectOption) (image.InspectResponse, error)
}

// Client is an ImageInspector that owns a connection.
type Client interface {
	ImageInspector
	io.Closer
}

// NewClient constructs a Docker SDK client using environment defaults.
func NewClient() (Client, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return dockerClient, nil
}

// ImageSummary holds the image details shown after a build.
type ImageSummary struct {
	ID       string
	Tags     []string
	Size     int64
	Platform string
	Created  string
}

// ShortID returns the 12-character image ID without its digest algorithm.
func (s ImageSummary) ShortID() string {
	id := s.ID
	if idx := strings.Index(id, ":"); idx >= 0 {
		id = id[idx+1:]
	}
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}

// HumanSize renders Size the way the docker CLI does.
func (s ImageSummary) HumanSize() string {
	return units.HumanSizeWithPrecision(float64(s.Size), 3)
}

// CreatedSince renders Created relative to now, e.g. "2 hours ago". An
// unparsable timestamp is returned as-is.
func (s ImageSummary) CreatedSince(now time.Time) string {
	created, err := time.Parse(time.RFC3339Nano, s.Created)
	if err != nil {
		return s.Created
	}
	return units.HumanDuration(now.Sub(created)) + " ago"
}

// TagList joins Tags for display.
func (s ImageSummary) TagList() string {
	return strings.Join(s.Tags, ", ")
}

// InspectImage looks up ref in the local image store.
func InspectImage(ctx context.Context, inspector ImageInspector, ref string) (ImageSummary, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ImageSummary{}, errImageRefRequired
	}
	if inspector == nil {
		return ImageSummary{}, errors.New("docker client is nil")
	}
	resp, err := inspector.ImageInspect(ctx, ref)
	if err != nil {
		return ImageSummary{}, fmt.Errorf("inspect image %s: %w", ref, err)
	}
	platform := resp.Os
	if resp.Architecture != "" {
		platform += "/" + resp.Architecture
	}
	if resp.Variant != "" {
		platform += "/" + resp.Variant
	}
	return ImageSummary{
		ID:       resp.ID,
		Tags:     append([]string(nil), resp.RepoTags...),
		Size:     resp.Size,
		Platform: platform,
		Created:  resp.Created,
	}, nil
}
