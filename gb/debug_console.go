package gb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/term"
)

// DebugConsole a console for debugging, you can execute some commands through stdio.
// commands:
//   s [N|Ns|Nd]:
//     execute step(s), Ns runs N seconds worth of cycles, Nd prints after every step.
//   p [c|t|l|j|m ADDR [LEN]]:
//     print.
//   br 0xADDR:
//     set a break point.
//   q:
//     quit.
//   r:
//     reset.
type DebugConsole struct {
	*Console
	breakpoints []uint16
	frames      uint64
}

var stepRe = regexp.MustCompile("^([0-9]+)([sd]?)$")

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

func NewDebugConsole(console *Console) *DebugConsole {
	return &DebugConsole{Console: console}
}

// Run reads commands from in until quit or end of input. A terminal gets a
// line editor with history, anything else is read line by line.
func (c *DebugConsole) Run(in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return c.run(bufio.NewScanner(in), out)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set the terminal raw: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			glog.Warningf("Failed to restore the terminal: %v", err)
		}
	}()
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, ">> ")
	fmt.Fprintln(t, "Debugger mode, 'q' to quit")
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Execute(line, t); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(t, err)
		}
	}
}

func (c *DebugConsole) run(scanner *bufio.Scanner, out io.Writer) error {
	fmt.Fprintf(out, "Debugger mode, 'q' to quit \n>> ")
	for scanner.Scan() {
		if err := c.Execute(scanner.Text(), out); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(out, err)
		}
		fmt.Fprintf(out, ">> ")
	}
	return scanner.Err()
}

// Execute runs one command line.
func (c *DebugConsole) Execute(line string, out io.Writer) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "p", "print":
		return c.printCommand(args, out)
	case "s", "step":
		cycles, err := c.stepCommand(args, out)
		c.basePrint(out) // Print data before it die.
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Executed %d cycles.\n", cycles)
	case "br", "breakpoint":
		return c.breakPointCommand(args, out)
	case "r", "reset":
		c.frames = 0
		return c.Reset()
	case "q", "quit":
		fmt.Fprintln(out, "Quitting.")
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s", line)
	}
	return nil
}

func (c *DebugConsole) step() (int, error) {
	cycles, err := c.Step()
	if err != nil {
		return cycles, err
	}
	if c.LCD.Frame() {
		c.frames++
	}
	return cycles, nil
}

func (c *DebugConsole) checkBreak(out io.Writer) bool {
	for _, b := range c.breakpoints {
		if b == c.CPU.PC() {
			fmt.Fprintf(out, "Break at: 0x%04x\n", b)
			return true
		}
	}
	return false
}

func (c *DebugConsole) stepCommand(args []string, out io.Writer) (int, error) {
	if len(args) < 2 {
		return c.step()
	}
	m := stepRe.FindStringSubmatch(args[1])
	if m == nil {
		return 0, fmt.Errorf("invalid step count: %s", args[1])
	}
	num, _ := strconv.Atoi(m[1])
	cycles := 0
	steps := num
	if m[2] == "s" {
		// s means seconds, run ClockSpeed * num cycles.
		steps = -1
	}
	for i := 0; steps < 0 || i < steps; i++ {
		if steps < 0 && cycles >= ClockSpeed*num {
			break
		}
		v, err := c.step()
		if m[2] == "d" {
			c.basePrint(out)
		}
		if err != nil {
			return cycles, err
		}
		cycles += v
		if c.checkBreak(out) {
			break
		}
	}
	return cycles, nil
}

func (c *DebugConsole) breakPointCommand(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: br 0xADDR")
	}
	address, err := strconv.ParseUint(args[1], 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", args[1], err)
	}
	c.breakpoints = append(c.breakpoints, uint16(address))
	fmt.Fprintf(out, "Breakpoint set at 0x%04x\n", address)
	return nil
}

func (c *DebugConsole) basePrint(out io.Writer) {
	fmt.Fprintln(out, "--------------------------------------------------")
	fmt.Fprintf(out, "Executed cycles: %d\n", c.Cycles())
	fmt.Fprintf(out, "Rendered frame: %d\n", c.frames)
	fmt.Fprintln(out, "Last: "+c.CPU.LastExecution())
	fmt.Fprintf(out, "CPU: %v\n", c.CPU)
	fmt.Fprintf(out, "IE=0x%02x, IF=0x%02x, LY=%d\n",
		c.Bus.Read(IE, Internal), c.Bus.Read(IF, Internal), c.LCD.Scanline())
}

func (c *DebugConsole) printTimer(out io.Writer) {
	fmt.Fprintf(out, "DIV=0x%02x, TIMA=0x%02x, TMA=0x%02x, TAC=0x%02x, div clock=%d, counter clock=%d\n",
		c.Bus.Read(DIV, Internal), c.Bus.Read(TIMA, Internal), c.Bus.Read(TMA, Internal), c.Bus.Read(TAC, Internal),
		c.Timer.divClock, c.Timer.counterClock)
}

// printMemory dumps length bytes from address, 16 per line.
func (c *DebugConsole) printMemory(args []string, out io.Writer) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: p m 0xADDR [LEN]")
	}
	address, err := strconv.ParseUint(args[2], 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address %s: %w", args[2], err)
	}
	length := uint64(16)
	if len(args) > 3 {
		if length, err = strconv.ParseUint(args[3], 0, 16); err != nil {
			return fmt.Errorf("invalid length %s: %w", args[3], err)
		}
	}
	for i := uint64(0); i < length; i++ {
		a := uint16(address + i)
		if i%16 == 0 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			r, _ := c.Bus.resolve(a)
			fmt.Fprintf(out, "%-8v 0x%04x:", r, a)
		}
		fmt.Fprintf(out, " %02x", c.Bus.Read(a, Internal))
	}
	fmt.Fprintln(out)
	return nil
}

func (c *DebugConsole) printCommand(args []string, out io.Writer) error {
	if len(args) < 2 {
		c.basePrint(out)
		return nil
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Fprintf(out, "%v\n", c.CPU)
	case "t", "timer":
		c.printTimer(out)
	case "l", "lcd":
		fmt.Fprintf(out, "LCDC=0x%02x, STAT=0x%02x, LY=%d, LYC=%d, cycle=%d\n",
			c.Bus.Read(LCDC, Internal), c.Bus.Read(STAT, Internal), c.LCD.scanline, c.Bus.Read(LYC, Internal), c.LCD.cycle)
	case "j", "joypad":
		fmt.Fprintf(out, "%+v\n", *c.Joypad)
	case "m", "memory":
		return c.printMemory(args, out)
	default:
		return fmt.Errorf("unknown print target: %s", args[1])
	}
	return nil
}
