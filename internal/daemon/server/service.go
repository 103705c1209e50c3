package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/timetrack-io/timetrack/internal/daemon/entry"
	"github.com/timetrack-io/timetrack/internal/models"
	"github.com/timetrack-io/timetrack/internal/rpc"
)

// timetrackService implements rpc.TimetrackServiceServer on top of the entry
// manager.
type timetrackService struct {
	manager *entry.Manager
}

func epochMs(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}

func epochToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func entryToRPC(e *models.Entry, categoryName string) *rpc.Entry {
	out := &rpc.Entry{
		ID:             e.ID,
		Name:           e.Name,
		CategoryID:     e.CategoryID,
		CategoryName:   categoryName,
		Completed:      e.Completed,
		DurationMillis: e.DurationMillis,
		StopwatchStart: epochMs(e.StopwatchStart),
		StartDate:      epochMs(e.StartDate),
		EndDate:        epochMs(e.EndDate),
		CreatedDate:    e.CreatedDate.UnixMilli(),
		EntryDate:      epochMs(e.EntryDate),
		Description:    e.Description,
		LinkedRecordID: e.LinkedRecordID,
	}
	if e.LinkedRecordID != "" {
		out.LinkedRecordLabel = e.LinkedRecordID
	}
	return out
}

// convert resolves the entry's category name before conversion.
func (s *timetrackService) convert(e *models.Entry) (*rpc.Entry, error) {
	name, err := s.manager.CategoryName(e.CategoryID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to resolve category: %v", err)
	}
	return entryToRPC(e, name), nil
}

func (s *timetrackService) GetInfo(ctx context.Context, _ *emptypb.Empty) (*rpc.TimetrackInfo, error) {
	categories, entries, err := s.manager.GetInfo()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load entries: %v", err)
	}

	names := make(map[string]string, len(categories.Categories))
	info := &rpc.TimetrackInfo{}
	for _, c := range categories.Categories {
		names[c.ID] = c.Name
		info.Categories = append(info.Categories, &rpc.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	for _, e := range entries {
		info.Entries = append(info.Entries, entryToRPC(e, names[e.CategoryID]))
	}
	return info, nil
}

func (s *timetrackService) SaveEntry(ctx context.Context, req *rpc.SaveEntryRequest) (*rpc.Entry, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "entry name is required")
	}
	e, err := s.manager.SaveEntry(entry.SaveOptions{
		EntryID:    req.EntryID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		EntryDate:  epochToTime(req.EntryDate),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to save entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) DeleteEntry(ctx context.Context, req *rpc.EntryID) (*emptypb.Empty, error) {
	if err := s.manager.DeleteEntry(req.EntryID); err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to delete entry: %v", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *timetrackService) CompleteEntry(ctx context.Context, req *rpc.EntryID) (*rpc.Entry, error) {
	e, err := s.manager.CompleteEntry(req.EntryID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to complete entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) UncompleteEntry(ctx context.Context, req *rpc.EntryID) (*rpc.Entry, error) {
	e, err := s.manager.UncompleteEntry(req.EntryID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to reopen entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) StartEntry(ctx context.Context, req *rpc.StartEntryRequest) (*rpc.Entry, error) {
	at := epochToTime(req.EpochMillis)
	if at.IsZero() {
		at = time.Now()
	}
	e, err := s.manager.StartEntry(req.EntryID, at)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to start entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) StopEntry(ctx context.Context, req *rpc.StopEntryRequest) (*rpc.Entry, error) {
	at := epochToTime(req.EpochMillis)
	if at.IsZero() {
		at = time.Now()
	}
	e, err := s.manager.StopEntry(req.EntryID, at)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to stop entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) ResetEntry(ctx context.Context, req *rpc.EntryID) (*rpc.Entry, error) {
	e, err := s.manager.ResetEntry(req.EntryID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to reset entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) AddMilliseconds(ctx context.Context, req *rpc.AddMillisecondsRequest) (*rpc.Entry, error) {
	e, err := s.manager.AddMilliseconds(req.EntryID, req.DeltaMillis)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to adjust entry: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) SetNote(ctx context.Context, req *rpc.SetNoteRequest) (*rpc.Entry, error) {
	e, err := s.manager.SetNote(req.EntryID, req.Description)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to save note: %v", err)
	}
	return s.convert(e)
}

func (s *timetrackService) LinkRecord(ctx context.Context, req *rpc.LinkRecordRequest) (*rpc.Entry, error) {
	e, err := s.manager.LinkRecord(req.EntryID, req.RecordID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed to link record: %v", err)
	}
	return s.convert(e)
}
