package cmd

import (
	"encoding/hex"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/chroma"
	"github.com/prismhw/prismsim/devlib"
	"github.com/prismhw/prismsim/periph"
)

var (
	runTableFile string
	runMode      string
	runControl   string
	runTx        string
	runInput     string
	runData      string
	runDivisor   uint
	runPins      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full configuration and transfer session",
	Long: `Resets the bus, loads a microprogram table, releases the peripheral
and exchanges data with the emulated external devices.

In shift mode the session mounts the input/output shift register pair and
runs one 24-bit transfer. In serial mode it mounts the byte-serial link and
walks the queued bytes onto the bus.`,
	RunE: runSession,
}

func init() {
	runCmd.Flags().StringVar(&runTableFile, "table", "", "microprogram table listing (default: builtin)")
	runCmd.Flags().StringVar(&runMode, "mode", "shift", "device protocol: shift or serial")
	runCmd.Flags().StringVar(&runControl, "control", "", "released control word (default per mode)")
	runCmd.Flags().StringVar(&runTx, "tx", "0x00f05077", "transmit value (shift mode)")
	runCmd.Flags().StringVar(&runInput, "input", "0x00beef", "injected device source value (shift mode)")
	runCmd.Flags().StringVar(&runData, "data", "a5", "hex byte string queued on the link (serial mode)")
	runCmd.Flags().UintVar(&runDivisor, "divisor", 4, "link ticks per bit (serial mode)")
	runCmd.Flags().StringVar(&runPins, "pins", "", "pin map overrides, e.g. \"clk=2,load=1,store=7\"")
	rootCmd.AddCommand(runCmd)
}

func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "bad word value %q", s)
	}
	return uint32(v), nil
}

func runSession(cmd *cobra.Command, args []string) error {
	table := chroma.GPIO24
	control := uint32(0x25980000)
	if runMode == "serial" {
		table = chroma.SPISlave
		control = chroma.SPISlaveControl
	}
	if runTableFile != "" {
		t, err := chroma.ParseTableFile(runTableFile)
		if err != nil {
			return err
		}
		table = t
	}
	if runControl != "" {
		v, err := parseWord(runControl)
		if err != nil {
			return err
		}
		control = v
	}

	var pins map[string]int
	if runPins != "" {
		m, err := prismsim.ParsePinSpec(runPins)
		if err != nil {
			return err
		}
		pins = m
	}

	kind, err := devlib.ParseKind(runMode)
	if err != nil {
		return err
	}
	if kind == devlib.KindSerial {
		return runSerial(cmd, table, control, pins)
	}
	return runShift(cmd, table, control, pins)
}

func runShift(cmd *cobra.Command, table chroma.Table, control uint32, pins map[string]int) error {
	tx, err := parseWord(runTx)
	if err != nil {
		return err
	}
	input, err := parseWord(runInput)
	if err != nil {
		return err
	}

	p := periph.NewPeripheral()
	inDev := devlib.NewInShifter()
	outDev := devlib.NewOutShifter()
	for role, n := range pins {
		switch role {
		case "load":
			p.Pins.LoadN, inDev.Pins.LoadN = n, n
		case "clk":
			p.Pins.Clk, inDev.Pins.Clk, outDev.Pins.Clk = n, n, n
		case "data":
			p.Pins.Data, outDev.Pins.Data = n, n
		case "store":
			p.Pins.Store, outDev.Pins.Store = n, n
		case "in":
			p.Pins.DataIn, inDev.Pins.Data = n, n
		default:
			return errors.Errorf("unknown pin role %q for mode shift", role)
		}
	}
	inDev.SetValue(input)

	devs := []prismsim.Device{p, inDev, outDev}
	var edges int
	if verbose {
		var prev uint8
		clk := uint8(1) << uint(p.Pins.Clk)
		devs = append(devs, devlib.Probe(func(out, in uint8) {
			if prev&clk == 0 && out&clk != 0 {
				edges++
			}
			prev = out
		}))
	}

	sess, err := prismsim.New(0, devs...)
	if err != nil {
		return err
	}
	defer sess.Dispose()

	ctl := periph.NewController(periph.NewMaster(sess, p).Reset())
	if err := ctl.RunConfiguration(table, control); err != nil {
		return err
	}
	if verbose {
		cmd.Printf("configured, state %s, tick %d\n", ctl.State(), sess.Bus().Ticks())
	}
	rx, err := ctl.RunTransfer(tx)
	if err != nil {
		return err
	}
	cmd.Printf("tx 0x%08x -> latched 0x%08x\n", tx, outDev.Latched())
	cmd.Printf("input 0x%08x -> rx 0x%08x\n", input, rx)
	if verbose {
		cmd.Printf("done at tick %d, %d shift clock edges\n", sess.Bus().Ticks(), edges)
	}
	return nil
}

func runSerial(cmd *cobra.Command, table chroma.Table, control uint32, pins map[string]int) error {
	data, err := hex.DecodeString(runData)
	if err != nil {
		return errors.Wrapf(err, "bad data byte string %q", runData)
	}

	p := periph.NewPeripheral()
	link := devlib.NewSerialLink(runDivisor)
	for role, n := range pins {
		switch role {
		case "data":
			link.Pins.Data = n
		case "csn":
			link.Pins.CSN = n
		default:
			return errors.Errorf("unknown pin role %q for mode serial", role)
		}
	}
	sess, err := prismsim.New(0, p, link)
	if err != nil {
		return err
	}
	defer sess.Dispose()

	ctl := periph.NewController(periph.NewMaster(sess, p).Reset())
	if err := ctl.RunConfiguration(table, control); err != nil {
		return err
	}
	link.Queue(data)
	start := sess.Bus().Ticks()
	for !link.Done() {
		sess.Tick()
	}
	cmd.Printf("link walked %d bytes in %d ticks (divisor %d)\n",
		len(data), sess.Bus().Ticks()-start, runDivisor)
	return nil
}
