package clip

// headlessBackend is a no-op clipboard backend for environments without
// a display server (headless Linux servers, containers, etc.). It
// advertises no targets and returns nothing.
type headlessBackend struct{}

func (b *headlessBackend) Name() string       { return "headless (no-op)" }
func (b *headlessBackend) Targets() []string  { return nil }
func (b *headlessBackend) Read(string) []byte { return nil }
func (b *headlessBackend) Close()             {}
