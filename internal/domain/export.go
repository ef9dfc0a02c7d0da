package domain

type ExportEventKind string

const (
	ExportStarted  ExportEventKind = "started"
	ExportProgress ExportEventKind = "progress"
	ExportFile     ExportEventKind = "file"
	ExportError    ExportEventKind = "error"
	ExportDone     ExportEventKind = "done"
)

// ExportEvent is one entry in the export progress feed. Progress events carry
// the counts and the filename about to be fetched; file events carry the
// fetched bytes (base64 over the wire) so the consumer can save them.
type ExportEvent struct {
	Kind        ExportEventKind `json:"kind"`
	Completed   int             `json:"completed,omitempty"`
	Total       int             `json:"total,omitempty"`
	Current     string          `json:"current,omitempty"`
	Filename    string          `json:"filename,omitempty"`
	ContentType string          `json:"content_type,omitempty"`
	Data        []byte          `json:"data,omitempty"`
	Message     string          `json:"message,omitempty"`
}
