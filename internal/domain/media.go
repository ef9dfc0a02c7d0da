package domain

// PurgeResult summarizes a best-effort media purge. Failed counts object
// store deletes that did not go through; the provider record is cleared
// either way.
type PurgeResult struct {
	Attempted int `json:"attempted"`
	Failed    int `json:"failed"`
}

func (r PurgeResult) Clean() bool {
	return r.Failed == 0
}
