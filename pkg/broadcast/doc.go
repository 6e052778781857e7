// Package broadcast tracks live streaming connections and tells each one
// when to push a fresh snapshot to its client.
//
// A Registry guards a single map of connection entries, each carrying two
// flags: dirty (a change happened since the connection last pushed) and
// alive (the connection ticked since the last aliveness reset). Consumers
// interact through opaque Handles; the map itself is never exposed.
//
// Typical wiring for a server-sent events endpoint:
//
//	registry := broadcast.NewRegistry[auth.Stats]()
//
//	// In the mutation path, after any account change:
//	registry.OnChange()
//
//	// In the SSE handler:
//	handle := registry.Open()
//	for snapshot := range registry.Stream(ctx, handle, svc.Stats) {
//	    writeEvent(w, snapshot)
//	}
//
// Every entry starts dirty, so a new connection pushes its first snapshot
// on the first tick. Cleanup is change-driven: OnChange purges entries
// whose connections stopped ticking, so a registry that never sees another
// change retains stale entries until the next one.
package broadcast
