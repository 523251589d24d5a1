package life

// Diagnostics receives grid lifecycle events. The engine never prints on its
// own; a front end that wants construction diagnostics installs a sink here.
type Diagnostics interface {
	GridCreated(width, height int)
	GridResized(oldWidth, oldHeight, newWidth, newHeight int)
}

type nopDiagnostics struct{}

func (nopDiagnostics) GridCreated(int, int)           {}
func (nopDiagnostics) GridResized(int, int, int, int) {}

var diag Diagnostics = nopDiagnostics{}

// SetDiagnostics installs the sink for grid lifecycle events; nil restores
// the default no-op sink. Install once at startup, before grids are built.
func SetDiagnostics(d Diagnostics) {
	if d == nil {
		diag = nopDiagnostics{}
		return
	}
	diag = d
}
