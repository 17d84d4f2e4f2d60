package main

import (
	"flag"
	"io/ioutil"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/golang/glog"

	"github.com/jyane/jgbc/gb"
	"github.com/jyane/jgbc/ui"
)

var (
	path       = flag.String("path", "./rom/sample.gb", "path to ROM file")
	bootPath   = flag.String("boot", "", "path to boot ROM file, the boot sequence is skipped when empty")
	width      = flag.Int("width", 160*4, "widow width")
	height     = flag.Int("height", 144*4, "widow height")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "run as debug mode")
	headless   = flag.Bool("headless", false, "run without a window, serial output goes to stdout")
	cycles     = flag.Int("cycles", gb.ClockSpeed*10, "cycles to run in headless mode")
	stats      = flag.String("statsview", "", "serve runtime statistics on this address, e.g. localhost:12600")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *stats != "" {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(*stats))
			statsview.New().Start()
		}()
		glog.Infof("Stats server available at http://%s/debug/statsview", *stats)
	}
	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("Failed to read: " + *path)
	}
	var boot []byte
	if *bootPath != "" {
		if boot, err = readFile(*bootPath); err != nil {
			glog.Fatalln("Failed to read: " + *bootPath)
		}
	}
	cartridge, err := gb.NewCartridge(buf)
	if err != nil {
		glog.Fatalln("Failed to load cartridge: ", err)
	}
	options := gb.Options{}
	if *headless {
		options.Serial = os.Stdout
	}
	console, err := gb.NewConsole(cartridge, boot, options)
	if err != nil {
		glog.Fatalln("Failed to initiate Console: ", err)
	}
	switch {
	case *debug:
		if err := gb.NewDebugConsole(console).Run(os.Stdin, os.Stdout); err != nil {
			glog.Errorln("Debugger stopped: ", err)
		}
	case *headless:
		n, err := console.Run(*cycles)
		if err != nil {
			glog.Errorf("Stopped after %d cycles: %v", n, err)
		}
	default:
		ui.Start(console, *width, *height)
	}
}
