package main

import (
	"io/fs"
	"os"
)

// FS is what embed.FS and os.DirFS() have in common. Code that reads the data
// folder takes an FS and works the same whether the files are embedded in the
// executable or read from disk.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

// DataFS prefers a data folder next to the executable's working directory,
// which can be edited while the game runs. Without one, the embedded copy is
// used.
func DataFS(dir string, embedded FS) (fsys FS, onDisk bool) {
	disk := os.DirFS(dir).(FS)
	if FileExists(disk, "data") {
		return disk, true
	}
	return embedded, false
}
