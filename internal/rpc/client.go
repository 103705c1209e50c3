package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Client is the gRPC client for the timetrack service.
type Client struct {
	cc *grpc.ClientConn
}

// NewClient wraps an established connection.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out interface{}) error {
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(CodecName))
}

// GetInfo fetches the categories and all entries.
func (c *Client) GetInfo(ctx context.Context) (*TimetrackInfo, error) {
	out := new(TimetrackInfo)
	if err := c.invoke(ctx, "GetInfo", &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveEntry creates (empty id) or updates an entry.
func (c *Client) SaveEntry(ctx context.Context, in *SaveEntryRequest) (*Entry, error) {
	out := new(Entry)
	if err := c.invoke(ctx, "SaveEntry", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEntry permanently deletes an entry.
func (c *Client) DeleteEntry(ctx context.Context, entryID string) error {
	return c.invoke(ctx, "DeleteEntry", &EntryID{EntryID: entryID}, &emptypb.Empty{})
}

// CompleteEntry marks an entry completed.
func (c *Client) CompleteEntry(ctx context.Context, entryID string) (*Entry, error) {
	out := new(Entry)
	if err := c.invoke(ctx, "CompleteEntry", &EntryID{EntryID: entryID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UncompleteEntry reopens a completed entry.
func (c *Client) UncompleteEntry(ctx context.Context, entryID string) (*Entry, error) {
	out := new(Entry)
	if err := c.invoke(ctx, "UncompleteEntry", &EntryID{EntryID: entryID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartEntry starts an entry's stopwatch.
func (c *Client) StartEntry(ctx context.Context, entryID string, epochMillis int64) (*Entry, error) {
	out := new(Entry)
	in := &StartEntryRequest{EntryID: entryID, EpochMillis: epochMillis}
	if err := c.invoke(ctx, "StartEntry", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// StopEntry stops an entry's stopwatch.
func (c *Client) StopEntry(ctx context.Context, entryID string, epochMillis int64) (*Entry, error) {
	out := new(Entry)
	in := &StopEntryRequest{EntryID: entryID, EpochMillis: epochMillis}
	if err := c.invoke(ctx, "StopEntry", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResetEntry zeroes an entry's duration and dates.
func (c *Client) ResetEntry(ctx context.Context, entryID string) (*Entry, error) {
	out := new(Entry)
	if err := c.invoke(ctx, "ResetEntry", &EntryID{EntryID: entryID}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMilliseconds adjusts an entry's duration by a signed delta.
func (c *Client) AddMilliseconds(ctx context.Context, entryID string, deltaMillis int64) (*Entry, error) {
	out := new(Entry)
	in := &AddMillisecondsRequest{EntryID: entryID, DeltaMillis: deltaMillis}
	if err := c.invoke(ctx, "AddMilliseconds", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetNote replaces an entry's note.
func (c *Client) SetNote(ctx context.Context, entryID, description string) (*Entry, error) {
	out := new(Entry)
	in := &SetNoteRequest{EntryID: entryID, Description: description}
	if err := c.invoke(ctx, "SetNote", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LinkRecord links an entry to an external record; empty recordID unlinks.
func (c *Client) LinkRecord(ctx context.Context, entryID, recordID string) (*Entry, error) {
	out := new(Entry)
	in := &LinkRecordRequest{EntryID: entryID, RecordID: recordID}
	if err := c.invoke(ctx, "LinkRecord", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
