package storage

import "coconala-ranking/models"

// RecordWriter is the interface any output sink must satisfy.
type RecordWriter interface {
	Write(records []*models.ServiceRecord) error
	Close() error
}
