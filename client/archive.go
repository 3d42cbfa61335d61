package client

import "context"

// ArchiveService handles snapshot archive operations. These endpoints return
// 503 when the server runs without an archive database.
type ArchiveService struct {
	c *Client
}

// Save archives the current graph snapshot and returns its metadata.
func (s *ArchiveService) Save(ctx context.Context) (*SnapshotInfo, error) {
	var info SnapshotInfo
	if err := s.c.post(ctx, "/api/v1/archive", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// latestResponse wraps the latest-snapshot payload.
type latestResponse struct {
	Info     SnapshotInfo `json:"info"`
	Snapshot ExportFormat `json:"snapshot"`
}

// Latest returns the most recently archived snapshot.
func (s *ArchiveService) Latest(ctx context.Context) (*ExportFormat, *SnapshotInfo, error) {
	var resp latestResponse
	if err := s.c.get(ctx, "/api/v1/archive/latest", nil, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.Snapshot, &resp.Info, nil
}
