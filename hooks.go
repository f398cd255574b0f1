package treap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	rotateHook func(root any, pivot any)
)
