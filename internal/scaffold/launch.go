// Package scaffold creates the fixed per-day skeleton files.
package scaffold

import "fmt"

// launchTemplate is the exact launch.json written into every day directory.
// Everything except the debuggee program path is a fixed literal;
// byte-for-byte stability across days is part of the contract.
const launchTemplate = `{
    "version": "0.2.0",
    "configurations": [
        {
            "name": "Debug",
            "type": "lldb",
            "request": "launch",
            "program": "${workspaceFolder}/target/debug/%s",
            "args": [],
            "env": {},
            "cwd": "${workspaceFolder}",
            "relativePathBase": "${workspaceFolder}",
            "stopOnEntry": false
        }
    ]
}
`

// LaunchConfig renders launch.json for the given day directory. The single
// substitution is the debuggee path target/debug/<dayDir>.
func LaunchConfig(dayDir string) string {
	return fmt.Sprintf(launchTemplate, dayDir)
}
