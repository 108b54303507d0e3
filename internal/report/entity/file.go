package entity

import "time"

// RemoteFile describes a file in the remote store.
type RemoteFile struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Size      int64
}
