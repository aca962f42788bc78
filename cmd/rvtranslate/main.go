// Command rvtranslate is a cobra CLI over the translate package: decode
// RISC-V instruction words to assembly text, or assemble text back into
// words. The host/WASM glue the original project also shipped is out of
// scope here (see translate package doc); this binary is the Go-native
// stand-in for that outer surface.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bbbbbq/riscv-online/config"
	"github.com/bbbbbq/riscv-online/translate"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvtranslate",
		Short: "Bidirectional RISC-V instruction translator (RV32I/RV64I/RVC/M/F/Zicsr/A)",
	}

	var xlenFlag int
	var autoFlag bool

	disasmCmd := &cobra.Command{
		Use:   "disassemble [hex-word]",
		Short: "Decode a hex instruction word into assembly text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCLIConfig()
			xlen, auto := resolveXlen(cmd, xlenFlag, autoFlag, cfg)
			var out string
			if auto {
				out = translate.DisassembleAuto(args[0])
			} else {
				out = translate.DisassembleWithXlen(args[0], xlen)
			}
			fmt.Println(out)
			if strings.HasPrefix(out, "Error: ") {
				return fmt.Errorf("%s", strings.TrimPrefix(out, "Error: "))
			}
			return nil
		},
	}
	disasmCmd.Flags().IntVar(&xlenFlag, "xlen", 0, "Register width: 32, 64, or 128 (defaults to config)")
	disasmCmd.Flags().BoolVar(&autoFlag, "auto", false, "Try every register width and keep the first that decodes")

	var asmXlenFlag int
	var asmAutoFlag bool
	var asmFile string

	asmCmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble restricted RISC-V assembly text into hex words, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCLIConfig()
			xlen, auto := resolveXlen(cmd, asmXlenFlag, asmAutoFlag, cfg)

			input, err := readAssemblySource(asmFile, args)
			if err != nil {
				return err
			}

			var out string
			if auto {
				out = translate.AssembleAuto(input)
			} else {
				out = translate.AssembleWithXlen(input, xlen)
			}
			fmt.Println(out)
			if strings.Contains(out, "Error: ") {
				return fmt.Errorf("one or more lines failed to assemble")
			}
			return nil
		},
	}
	asmCmd.Flags().IntVar(&asmXlenFlag, "xlen", 0, "Register width: 32, 64, or 128 (defaults to config)")
	asmCmd.Flags().BoolVar(&asmAutoFlag, "auto", false, "Try every register width per line and keep the first that encodes")
	asmCmd.Flags().StringVar(&asmFile, "file", "", "Read assembly from this file instead of stdin/args")

	rootCmd.AddCommand(disasmCmd, asmCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCLIConfig loads the user's config, falling back to defaults if the
// file is missing or malformed — a CLI invocation should never fail
// merely because config.toml couldn't be read.
func loadCLIConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// resolveXlen picks the effective xlen and auto-detect flag: an explicit
// --xlen/--auto on the command line wins, otherwise config.toml's
// translate.default_xlen / translate.auto_xlen apply.
func resolveXlen(cmd *cobra.Command, xlenFlag int, autoFlag bool, cfg *config.Config) (int, bool) {
	auto := autoFlag || (!cmd.Flags().Changed("xlen") && cfg.Translate.AutoXlen)
	xlen := xlenFlag
	if xlen == 0 {
		xlen = cfg.Translate.DefaultXlen
	}
	return xlen, auto
}

func readAssemblySource(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file) // #nosec G304 -- user-specified CLI input file
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return sb.String(), nil
}
