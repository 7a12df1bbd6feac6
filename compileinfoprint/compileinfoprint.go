// compileinfoprint is imported by the commands for the side effect of printing
// build provenance to os.Stderr before any output is written.
package compileinfoprint

import "github.com/carbocation/chromlgs/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
