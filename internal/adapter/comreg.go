package adapter

import (
	"os"
	"path/filepath"

	"github.com/pybundle/pyinstall/internal/executor"
	"github.com/pybundle/pyinstall/internal/logger"
)

// comServers are the sample COM servers shipped with pywin32. The list
// must stay in sync with the bundle's Scripts/registerCOMObj.py.
var comServers = []struct {
	Module string
	Class  string
}{
	{"win32com.servers.interp", "Interpreter"},
	{"win32com.servers.dictionary", "DictionaryPolicy"},
	{"win32com.axscript.client.pyscript", "PyScript"},
}

// comRegisterArgs builds the command line for registering one COM
// server. Registration runs in the installed interpreter so the
// registry records paths into the new install.
func comRegisterArgs(installDir, module, class string) (string, []string) {
	python := filepath.Join(installDir, "python.exe")
	script := filepath.Join(installDir, "Scripts", "registerCOMObj.py")
	return python, []string{script, "--register", "--module", module, "--class", class}
}

// registerCOMServers registers the bundled sample COM servers. A
// failing registration (commonly access denied without elevation)
// degrades to a warning; the remaining servers are still attempted.
func registerCOMServers(exec executor.CommandExecutor, installDir string) {
	for _, srv := range comServers {
		name, args := comRegisterArgs(installDir, srv.Module, srv.Class)
		if _, err := exec.Execute(name, args...); err != nil {
			logger.Warn("could not register COM server %s: %v", srv.Module, err)
			continue
		}
		logger.Debug("registered COM server %s (%s)", srv.Module, srv.Class)
	}
}

// ensureGenPyDir creates the win32com gen_py cache directory that
// generated COM wrappers are written into.
func ensureGenPyDir(installDir string) error {
	genPy := filepath.Join(installDir, "Lib", "site-packages", "win32com", "gen_py")
	return os.MkdirAll(genPy, 0755)
}
