// Command armcdump reads a JSON instruction-stream fixture and a YAML
// subtarget profile, runs them through the arm package's Emitter, and
// prints the resulting bytes, fixups, and counters. It exists to exercise
// the emitter end-to-end the same way wazero's own cmd/wazero exercises
// its runtime — a demonstration tool, not part of the core.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tetratelabs/armcodec/internal/asm"
	"github.com/tetratelabs/armcodec/internal/asm/arm"
)

// subtargetProfile is the YAML shape cmd/armcdump loads its SubtargetState
// from, mirroring the small config-file pattern the rest of the retrieval
// pack (e.g. Manu343726-cucaracha's config loader) uses for CLI tools.
type subtargetProfile struct {
	OS     string `yaml:"os"`
	Thumb  bool   `yaml:"thumb"`
	Thumb2 bool   `yaml:"thumb2"`
}

func parseOsTag(tag string) arm.OsTag {
	switch tag {
	case "darwin":
		return arm.OsDarwin
	case "macosx":
		return arm.OsMacOSX
	case "ios":
		return arm.OsIOS
	default:
		return arm.OsOther
	}
}

func loadSubtarget(path string) (arm.SubtargetState, error) {
	if path == "" {
		return arm.NewSubtarget(arm.OsOther), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return arm.SubtargetState{}, fmt.Errorf("reading subtarget profile: %w", err)
	}
	var profile subtargetProfile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return arm.SubtargetState{}, fmt.Errorf("parsing subtarget profile: %w", err)
	}
	var features []arm.FeatureBit
	if profile.Thumb {
		features = append(features, arm.FeatureThumb)
	}
	if profile.Thumb2 {
		features = append(features, arm.FeatureThumb2)
	}
	return arm.NewSubtarget(parseOsTag(profile.OS), features...), nil
}

// jsonOperand is the wire shape one symbolic Operand takes in the
// instruction-stream fixture; exactly one of the fields is populated,
// selected by Kind.
type jsonOperand struct {
	Kind string `json:"kind"`
	Reg  string `json:"reg,omitempty"`
	Imm  int64  `json:"imm,omitempty"`
}

type jsonInstruction struct {
	Opcode   string        `json:"opcode"`
	Operands []jsonOperand `json:"operands"`
}

var opcodeNames = map[string]asm.Instruction{
	"NOP": arm.NOP, "ADD": arm.ADD, "SUB": arm.SUB, "LDR": arm.LDR, "STR": arm.STR,
	"B": arm.B, "BW": arm.BW, "BL": arm.BL, "BLX": arm.BLX, "BCC": arm.BCC, "CBZ": arm.CBZ,
	"MOVW": arm.MOVW, "MOVT": arm.MOVT, "LDM": arm.LDM, "STM": arm.STM,
	"VLDR": arm.VLDR, "VSTR": arm.VSTR, "VLD1": arm.VLD1, "VST1": arm.VST1, "VMOV": arm.VMOV,
}

func opcodeByName(name string) (asm.Instruction, bool) {
	op, ok := opcodeNames[name]
	return op, ok
}

var registerNames = map[string]asm.Register{
	"R0": arm.REG_R0, "R1": arm.REG_R1, "R2": arm.REG_R2, "R3": arm.REG_R3,
	"R4": arm.REG_R4, "R5": arm.REG_R5, "R6": arm.REG_R6, "R7": arm.REG_R7,
	"R8": arm.REG_R8, "R9": arm.REG_R9, "R10": arm.REG_R10, "R11": arm.REG_R11,
	"R12": arm.REG_R12, "SP": arm.REG_SP, "LR": arm.REG_LR, "PC": arm.REG_PC,
	"S0": arm.REG_S0, "D0": arm.REG_D0,
}

func registerByName(name string) (asm.Register, bool) {
	reg, ok := registerNames[name]
	return reg, ok
}

func newRootCmd() *cobra.Command {
	var subtargetPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "armcdump <instructions.json>",
		Short: "Encode a JSON instruction stream and print the resulting bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if !verbose {
				log.SetLevel(logrus.InfoLevel)
			} else {
				log.SetLevel(logrus.TraceLevel)
			}

			sub, err := loadSubtarget(subtargetPath)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading instruction stream: %w", err)
			}
			var stream []jsonInstruction
			if err := json.Unmarshal(raw, &stream); err != nil {
				return fmt.Errorf("parsing instruction stream: %w", err)
			}

			table := arm.NewStaticTemplateTable(arm.DefaultTemplates())
			emitter := arm.NewEmitter(table, arm.StaticRegisterDatabase{}, sub)
			emitter.SetTraceLogger(log)

			sink := arm.NewByteSliceSink()
			var fixups []arm.Fixup
			for _, ji := range stream {
				opcode, ok := opcodeByName(ji.Opcode)
				if !ok {
					return fmt.Errorf("unknown opcode %q", ji.Opcode)
				}
				in := &arm.Inst{Opcode: opcode, Operands: toOperands(ji.Operands)}
				emitter.EncodeInstruction(in, &fixups, sink)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "bytes: %s\n", hex.EncodeToString(sink.Bytes()))
			fmt.Fprintf(cmd.OutOrStdout(), "instructions_emitted: %d\n", emitter.InstructionsEmitted())
			fmt.Fprintf(cmd.OutOrStdout(), "constant_pool_relocations: %d\n", emitter.ConstantPoolRelocations())
			for _, f := range fixups {
				fmt.Fprintf(cmd.OutOrStdout(), "fixup: kind=%d\n", f.Kind)
			}
			return nil
		},
	}

	flags := pflag.NewFlagSet("armcdump", pflag.ContinueOnError)
	flags.StringVar(&subtargetPath, "subtarget", "", "path to a YAML subtarget profile")
	flags.BoolVarP(&verbose, "verbose", "v", false, "trace one log line per encoded instruction")
	root.Flags().AddFlagSet(flags)

	return root
}

func toOperands(ops []jsonOperand) []arm.Operand {
	out := make([]arm.Operand, 0, len(ops))
	for _, o := range ops {
		switch o.Kind {
		case "reg":
			reg, ok := registerByName(o.Reg)
			if !ok {
				panic(fmt.Sprintf("armcdump: unknown register %q", o.Reg))
			}
			out = append(out, arm.RegOperand(reg))
		case "imm":
			out = append(out, arm.ImmOperand(o.Imm))
		default:
			panic(fmt.Sprintf("armcdump: unknown operand kind %q", o.Kind))
		}
	}
	return out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
