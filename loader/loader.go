package loader

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/wawel/types"
)

//go:embed worlds
var builtin embed.FS

// DefaultWorld is the name of the built-in castle.
const DefaultWorld = "wawel"

// collector accumulates Lua definitions during file execution.
type collector struct {
	game  *lua.LTable
	rooms []rawRoom
	items []rawItem
}

// Load reads world content from path and returns validated definitions.
// A directory is read as Lua files, a .lua file on its own as a single-file
// world, and a .yaml/.yml file as YAML. An empty path or the name of a
// built-in world loads the embedded content.
func Load(p string) (*types.Defs, error) {
	if p == "" || p == DefaultWorld {
		return LoadDefault()
	}

	info, err := os.Stat(p)
	if err != nil {
		if names, _ := Builtins(); contains(names, p) {
			return LoadBuiltin(p)
		}
		return nil, fmt.Errorf("reading world %s: %w", p, err)
	}

	switch {
	case info.IsDir():
		return LoadDir(p)
	case strings.HasSuffix(p, ".lua"):
		return loadLua(os.DirFS(filepath.Dir(p)), []string{filepath.Base(p)})
	case strings.HasSuffix(p, ".yaml"), strings.HasSuffix(p, ".yml"):
		return LoadYAML(p)
	default:
		return nil, fmt.Errorf("world %s: unsupported file type", p)
	}
}

// LoadDefault loads the built-in Operation Wawel castle.
func LoadDefault() (*types.Defs, error) {
	return LoadBuiltin(DefaultWorld)
}

// LoadBuiltin loads one of the embedded worlds by name.
func LoadBuiltin(name string) (*types.Defs, error) {
	sub, err := fs.Sub(builtin, path.Join("worlds", name))
	if err != nil {
		return nil, fmt.Errorf("built-in world %s: %w", name, err)
	}
	return loadFSDir(sub, ".")
}

// Builtins lists the names of the embedded worlds.
func Builtins() ([]string, error) {
	entries, err := fs.ReadDir(builtin, "worlds")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// LoadDir reads all .lua files from dir, compiles them into world
// definitions, validates references, and returns the immutable Defs. The
// Lua VM is discarded after loading.
func LoadDir(dir string) (*types.Defs, error) {
	return loadFSDir(os.DirFS(dir), ".")
}

func loadFSDir(fsys fs.FS, dir string) (*types.Defs, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading world directory: %w", err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, path.Join(dir, e.Name()))
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}

	// Sort: game.lua first, rest alphabetical.
	return loadLua(fsys, sortedLuaFiles(luaFiles))
}

func loadLua(fsys fs.FS, files []string) (*types.Defs, error) {
	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		src, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		fn, err := L.Load(bytes.NewReader(src), path.Base(f))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling world: %w", err)
	}

	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Placement randomness belongs to the engine's seeded RNG.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("random", lua.LNil)
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
