// Command transmasc merges the Doom II Master Levels WADs into one PWAD.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	wad "github.com/stuarthighley/masterwad"
	"github.com/stuarthighley/masterwad/internal/masterlevels"
)

const usageText = `TransMasC: Command line tool to merge Master Levels WADs into one file

Usage: transmasc [options]

Options:
  -h | --help             Display this screen
  --master-path <path>    Path to Master Levels WAD directory [default: '.']
  --output <file>         Merged WAD to create [default: 'masterlevels.wad']
  --music-pack <file>     Music pack looked for in the master path [default: 'MLMUSIC.WAD']
  --no-umapinfo           Do not add UMAPINFO to resulting WAD
  --list <file>           Print the lump directory of a WAD and exit
  -v                      Log progress to stderr

Defaults can also be set in transmasc.ini in the working directory.
`

// configFile is read from the working directory
var configFile = masterlevels.DefaultConfigFile

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var masterPath, output, musicPack, list string
	var masterPathSet, noUMAPINFO, verbose bool

	flags := flag.NewFlagSet("transmasc", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Func("master-path", "", func(s string) error {
		if masterPathSet {
			return errors.New("--master-path given twice")
		}
		masterPath, masterPathSet = s, true
		return nil
	})
	flags.StringVar(&output, "output", "", "")
	flags.StringVar(&musicPack, "music-pack", "", "")
	flags.BoolVar(&noUMAPINFO, "no-umapinfo", false, "")
	flags.StringVar(&list, "list", "", "")
	flags.BoolVar(&verbose, "v", false, "")
	if err := flags.Parse(args); err != nil || flags.NArg() > 0 {
		fmt.Fprint(stderr, usageText)
		return 2
	}

	// Flags given on the command line override the ini file
	config, err := masterlevels.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "master-path":
			config.MasterPath = masterPath
		case "output":
			config.Output = output
		case "music-pack":
			config.MusicPack = musicPack
		case "no-umapinfo":
			config.NoUMAPINFO = noUMAPINFO
		}
	})

	if verbose {
		logger := log.New(stderr, "", log.LstdFlags)
		wad.SetLogger(logger)
		masterlevels.SetLogger(logger)
	}

	if list != "" {
		if err := listWAD(stdout, list); err != nil {
			fmt.Fprintln(stderr, "ERROR:", err)
			return 1
		}
		return 0
	}

	if err := merge(config); err != nil {
		var missing *masterlevels.MissingWADsError
		if errors.As(err, &missing) {
			for _, name := range missing.Names {
				fmt.Fprintf(stderr, "ERROR: Could not find WAD %s\n", name)
			}
			return 1
		}
		fmt.Fprintln(stderr, "ERROR:", err)
		return 1
	}
	fmt.Fprintln(stdout, "Results saved to:", config.Output)
	return 0
}

func merge(config *masterlevels.Config) error {
	if err := masterlevels.VerifyWADs(config.MasterPath, masterlevels.RequiredWADs); err != nil {
		return err
	}
	if _, err := os.Stat(config.Output); err == nil {
		return fmt.Errorf("%w: %s", wad.ErrOutputExists, config.Output)
	}

	lumps, err := masterlevels.Merge(masterlevels.DefaultPlan, masterlevels.Options{
		MasterPath:       config.MasterPath,
		NoUMAPINFO:       config.NoUMAPINFO,
		BundledMusicPack: masterlevels.MusicPackPresent(config.MasterPath, config.MusicPack),
	})
	if err != nil {
		return err
	}
	return wad.WriteFile(config.Output, lumps)
}

// listWAD prints the directory of a WAD, and the contents of its texture tables if it has them
func listWAD(w io.Writer, path string) error {
	r, err := wad.OpenFile(path)
	if err != nil {
		return err
	}
	header := r.Header()
	fmt.Fprintf(w, "%s: %d lumps, directory at %d\n", filepath.Base(path), header.NumLumps, header.InfoTableOfs)
	lumpInfos, err := r.Lumps()
	if err != nil {
		return err
	}
	for i, info := range lumpInfos {
		fmt.Fprintf(w, "%5d %-8s %10d %10d\n", i, info.Name, info.Filepos, info.Size)
	}

	if pnames, err := r.Lump(wad.PatchNamesLumpName, ""); err == nil {
		names, err := wad.ParsePatchNames(pnames.Data)
		if err != nil {
			return err
		}
		for i, name := range names {
			fmt.Fprintf(w, "Patch: %d %s", i, name)
			if lump, err := r.Lump(name, ""); err == nil {
				if pic, err := wad.ParsePicture(lump.Data); err == nil {
					fmt.Fprintf(w, " %dx%d", pic.Width, pic.Height)
				}
			}
			fmt.Fprintln(w)
		}
	}
	if textures, err := r.Lump(wad.TexturesLumpName, ""); err == nil {
		list, err := wad.ParseTextures(textures.Data)
		if err != nil {
			return err
		}
		for i, t := range list {
			fmt.Fprintln(w, "Texture:", i, t.Name, t.Width, t.Height, len(t.Patches))
		}
	}
	return nil
}
