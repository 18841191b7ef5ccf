package gemstar

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const scanWorkers = 10

func isRegular(file string) (bool, error) {
	info, err := os.Stat(file)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err != nil:
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// containsAssets reports whether dir holds both a sprite sheet and a palette
// sheet
func containsAssets(dir string) (bool, error) {
	for _, name := range []string{SpritesheetFilename, PalettesFilename} {
		ok, err := isRegular(filepath.Join(dir, name))
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (g *Gemstar) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && dir != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a directory
			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (g *Gemstar) directoryWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			ok, err := containsAssets(dir)
			if err != nil {
				errc <- err
				return
			}
			if !ok {
				continue
			}

			// Each directory gets its own PPU so there is only ever
			// one writer per table
			if err := g.Convert(filepath.Join(dir, SpritesheetFilename), filepath.Join(dir, PalettesFilename), filepath.Join(dir, SnapshotFilename)); err != nil {
				errc <- err
				return
			}
			g.logger.Printf("Wrote \"%s\"\n", filepath.Join(dir, SnapshotFilename))
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and converts the assets in every directory that contains
// both a sprite sheet and a palette sheet, writing the tables alongside them.
func (g *Gemstar) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc, err := g.findDirectories(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := g.directoryWorker(ctx, dirs)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
