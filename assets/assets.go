package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/matinee/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadState is the readiness of level data.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "loading"
}

// LevelFS returns the level directory: dir on disk when set, the embedded
// levels otherwise.
func LevelFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded levels: %v", err))
	}
	return sub
}

// LoadLevel reads the level file and, when present, the TMX collision file
// next to it. TMX shapes are appended after the authored ones.
func LoadLevel(fsys fs.FS, file, tmx string) (*leveldata.Data, error) {
	data, err := leveldata.Load(fsys, file)
	if err != nil {
		return nil, err
	}
	if tmx == "" {
		return data, nil
	}
	if _, err := fs.Stat(fsys, tmx); errors.Is(err, fs.ErrNotExist) {
		return data, nil
	}
	shapes, err := leveldata.LoadTMXShapes(fsys, tmx)
	if err != nil {
		return nil, err
	}
	data.CollisionInfo = append(data.CollisionInfo, shapes...)
	return data, nil
}

type loadResult struct {
	data *leveldata.Data
	err  error
}

// LevelLoader loads level data off the game loop. Start kicks off a load and
// Poll picks up the result without blocking.
type LevelLoader struct {
	fsys fs.FS
	file string
	tmx  string

	results chan loadResult
	state   LoadState
	data    *leveldata.Data
	err     error
}

func NewLevelLoader(fsys fs.FS, file, tmx string) *LevelLoader {
	return &LevelLoader{
		fsys:    fsys,
		file:    file,
		tmx:     tmx,
		results: make(chan loadResult, 1),
		state:   Failed,
	}
}

// Start begins loading. A load already in flight is left to finish; its
// result is picked up by Poll like any other.
func (l *LevelLoader) Start() {
	if l.state == Loading {
		return
	}
	l.state = Loading
	go func() {
		data, err := LoadLevel(l.fsys, l.file, l.tmx)
		l.results <- loadResult{data: data, err: err}
	}()
}

// Poll reports the current state. On the frame a load completes it returns
// Loaded with the new data, or Failed with the error.
func (l *LevelLoader) Poll() (LoadState, *leveldata.Data, error) {
	if l.state == Loading {
		select {
		case res := <-l.results:
			if res.err != nil {
				l.state, l.err = Failed, res.err
			} else {
				l.state, l.data, l.err = Loaded, res.data, nil
			}
		default:
		}
	}
	return l.state, l.data, l.err
}

// State is the result of the last Poll.
func (l *LevelLoader) State() LoadState {
	return l.state
}
