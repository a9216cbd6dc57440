package ports

// MetricsRecorder receives domain-level counters from the services.
// Implementations must tolerate concurrent calls; a nil recorder is
// treated as disabled everywhere.
type MetricsRecorder interface {
	RecordVote(target string)
	RecordChatMessage(room string)
	RecordNotification(kind string)
	SetCollectionSize(collection string, size int)
}
