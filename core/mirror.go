package core

// Mirror verbs.
const (
	MirrorUpsert = "UPSERT"
	MirrorDelete = "DELETE"
)

type (
	// MirrorOp is one local write queued for best-effort replication to the
	// remote repository. Payload carries the full record for upserts and is
	// nil for deletes.
	MirrorOp struct {
		Entity  string // intern | admin | task | feedback | attendance | document | news
		Verb    string // UPSERT | DELETE
		ID      string
		Payload interface{}
	}

	// Mirror accepts mirror operations after a local commit. Enqueue never
	// blocks and never fails the caller; delivery is fire-and-forget with
	// no ordering guarantee relative to other writers.
	Mirror interface {
		Enqueue(op MirrorOp)
	}
)

// NopMirror drops all operations. Used when no remote is configured.
type NopMirror struct{}

func (NopMirror) Enqueue(MirrorOp) {}
