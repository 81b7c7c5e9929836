/*
Ucalc CLI Calculator - Cobra Command Structure
===============================================

This file implements the Cobra-based command structure for ucalc. The
root command launches the interactive REPL, while subcommands provide
direct access to specific features (conversion, history, etc.).
*/

package cmd

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ucalc/config"
	"ucalc/display"
	"ucalc/evalctx"
	"ucalc/evaluator"
	"ucalc/history"
	"ucalc/number"
	"ucalc/parser"
	"ucalc/units"
)

const banner = `
  ╦ ╦╔═╗╔═╗╦  ╔═╗
  ║ ║║  ╠═╣║  ║
  ╚═╝╚═╝╩ ╩╩═╝╚═╝
`

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// session holds everything one REPL run threads through its command
// dispatch loop: the symbol tables the parser resolves against and
// the settings loaded from ~/.ucalc/config.yaml.
type session struct {
	cfg  *config.Config
	vars *evalctx.Variables
	funs *evalctx.Functions
}

func newSession() *session {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf(colorYellow+"Warning: Failed to load config: %v\n"+colorReset, err)
		cfg = config.Default()
	}
	vars := evalctx.NewVariables()
	for name, value := range cfg.Constants {
		vars.Define(name, number.FromReal(value))
	}
	return &session{cfg: cfg, vars: vars, funs: evalctx.NewFunctions()}
}

var rootCmd = &cobra.Command{
	Use:   "ucalc",
	Short: "ucalc - A complex-number CLI calculator",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `ucalc` + colorReset + ` is a feature-rich command-line calculator supporting:
  ` + colorGreen + `✓` + colorReset + ` Mathematical expressions over complex numbers
  ` + colorGreen + `✓` + colorReset + ` Unit conversions across multiple categories
  ` + colorGreen + `✓` + colorReset + ` Built-in mathematical functions and constants
  ` + colorGreen + `✓` + colorReset + ` Calculation history and session management
  ` + colorGreen + `✓` + colorReset + ` Customizable precision and settings`,
	Run: func(cmd *cobra.Command, args []string) { newSession().startREPL() },
}

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> to <to>",
	Short: "Convert a value between compatible units",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[2] != "to" {
			return fmt.Errorf("usage: ucalc convert <value> <from> to <to>")
		}
		s := newSession()
		return s.runConversion(args[0], args[1], args[3])
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display calculation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return history.ShowHistory()
	},
}

var precisionCmd = &cobra.Command{
	Use:   "precision <n>",
	Short: "Set and persist the display precision (0-20)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number: %s", args[0])
		}
		s := newSession()
		if err := s.cfg.SetPrecision(n); err != nil {
			return err
		}
		if err := s.cfg.Save(); err != nil {
			return err
		}
		fmt.Printf(colorGreen+"Precision set to %d significant digits\n"+colorReset, s.cfg.Precision)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd, historyCmd, precisionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// startREPL launches the interactive calculator session.
func (s *session) startREPL() {
	scanner := bufio.NewScanner(os.Stdin)

	printWelcome()

	for {
		fmt.Print(colorCyan + "» " + colorReset)

		if !scanner.Scan() {
			fmt.Println(colorYellow + "\nGoodbye!" + colorReset)
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit":
			fmt.Println(colorYellow + "Goodbye!" + colorReset)
			return

		case input == "clear" || input == "cls":
			clearScreen()
			printWelcome()
			continue

		case input == "help":
			printHelp()
			continue

		case input == "variables" || input == "vars":
			s.showVariables()
			continue

		case input == "history":
			if err := history.ShowHistory(); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}
			continue

		case strings.HasPrefix(input, "precision "):
			s.handlePrecision(input)
			continue

		case strings.HasPrefix(input, "convert "):
			s.handleConversion(input)
			continue

		default:
			s.handleExpression(input)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf(colorRed+"Input error: %v\n"+colorReset, err)
	}
}

// printWelcome displays the welcome banner.
func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  A Complex-Number CLI Calculator" + colorReset)
	fmt.Println(colorDim + "  Type 'help' for commands or 'exit' to quit\n" + colorReset)
}

// printHelp displays comprehensive command reference.
func printHelp() {
	fmt.Println(colorCyan + "╔════════════════════════════════════════════════════════════╗" + colorReset)
	fmt.Println(colorCyan + "║" + colorBold + "                     UCALC CALCULATOR                      " + colorReset + colorCyan + "║" + colorReset)
	fmt.Println(colorCyan + "╚════════════════════════════════════════════════════════════╝" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ BASIC COMMANDS ─────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expression>"+colorReset, "Evaluate mathematical expression")
	fmt.Printf("│ %-25s %s\n", colorGreen+"let a = <expr>"+colorReset, "Bind a variable")
	fmt.Printf("│ %-25s %s\n", colorGreen+"let f(a) = <expr>"+colorReset, "Define a function")
	fmt.Printf("│ %-25s %s\n", colorGreen+"help"+colorReset, "Show this help message")
	fmt.Printf("│ %-25s %s\n", colorGreen+"exit"+colorReset, "Exit the calculator")
	fmt.Printf("│ %-25s %s\n", colorGreen+"clear"+colorReset, "Clear terminal screen")
	fmt.Printf("│ %-25s %s\n", colorGreen+"variables"+colorReset, "Show all stored variables")
	fmt.Printf("│ %-25s %s\n", colorGreen+"history"+colorReset, "Display calculation history")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorPurple + "┌─ MATHEMATICAL FUNCTIONS ─────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Trigonometric:"+colorReset, "sin, cos, tan, asin, acos, arctan, atan")
	fmt.Printf("│ %-25s %s\n", colorBold+"Logarithmic:"+colorReset, "ln")
	fmt.Printf("│ %-25s %s\n", colorBold+"Exponential:"+colorReset, "exp, sqrt")
	fmt.Printf("│ %-25s %s\n", colorBold+"Utility:"+colorReset, "abs, ceil, floor, round")
	fmt.Printf("│ %-25s %s\n", colorBold+"Quantifiers:"+colorReset, "sum, prod, iter, if")
	fmt.Printf("│ %-25s %s\n", colorBold+"Other:"+colorReset, "max, min, % (remainder), ! (factorial)")
	fmt.Println(colorPurple + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorBlue + "┌─ VARIABLES & CONSTANTS ──────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Assignment:"+colorReset, "let a = 5, let area = pi * r^2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Constants:"+colorReset, "pi, tau, e, i, inf, nan")
	fmt.Println(colorBlue + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorGreen + "┌─ UNIT CONVERSION ────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Syntax:"+colorReset, "convert <value> <from> to <to>")
	fmt.Printf("│ %-25s %s\n", colorBold+"Length:"+colorReset, "m, cm, mm, km, in, ft, yd, mi")
	fmt.Printf("│ %-25s %s\n", colorBold+"Weight:"+colorReset, "kg, g, mg, lb, oz, ton")
	fmt.Printf("│ %-25s %s\n", colorBold+"Time:"+colorReset, "s, ms, min, h, d")
	fmt.Printf("│ %-25s %s\n", colorBold+"Example:"+colorReset, colorCyan+"convert 100 cm to m"+colorReset)
	fmt.Println(colorGreen + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ SETTINGS ───────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"precision <n>"+colorReset, "Set display precision (0-20)")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorCyan + "┌─ EXAMPLES ───────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Basic:"+colorReset, "2 + 3 * 4, (10 - 5) / 2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Functions:"+colorReset, "sin(30), sqrt(16), ln(100)")
	fmt.Printf("│ %-25s %s\n", colorBold+"Complex:"+colorReset, "i*i, sqrt(-1), 3+4i")
	fmt.Printf("│ %-25s %s\n", colorBold+"Variables:"+colorReset, "let a = 10, a * 2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Quantifiers:"+colorReset, "sum(1,10,n+1)")
	fmt.Println(colorCyan + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

// clearScreen clears the terminal display.
func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

// formatResult formats a Number with proper precision, using the
// teacher's own ±∞/NaN special-casing generalized to a complex value.
func formatResult(n number.Number, precision int) string {
	format := fmt.Sprintf("%%.%dg", precision)
	part := func(f float64) string {
		switch {
		case math.IsNaN(f):
			return "undefined (NaN)"
		case math.IsInf(f, 1):
			return "+∞"
		case math.IsInf(f, -1):
			return "-∞"
		default:
			return fmt.Sprintf(format, f)
		}
	}
	if n.Imag == 0 {
		return colorGreen + part(n.Real) + colorReset
	}
	sign := "+"
	if n.Imag < 0 || math.IsInf(n.Imag, -1) {
		sign = ""
	}
	return colorGreen + part(n.Real) + sign + part(n.Imag) + "i" + colorReset
}

// showVariables displays all currently bound variables.
func (s *session) showVariables() {
	if s.vars.Len() == 0 {
		fmt.Println(colorYellow + "No variables defined." + colorReset)
		return
	}

	fmt.Println(colorCyan + "┌─ Stored Variables ───────────────────────────────────────┐" + colorReset)
	for i := 0; i < s.vars.Len(); i++ {
		name := s.vars.Name(i)
		fmt.Printf(colorCyan+"│ "+colorReset+colorBold+"%-15s"+colorReset+" = %s\n", name, formatResult(s.vars.Get(i), s.cfg.Precision))
	}
	fmt.Println(colorCyan + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

// handlePrecision processes precision setting commands.
func (s *session) handlePrecision(input string) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		fmt.Println(colorRed + "Usage: " + colorReset + "precision <number>")
		fmt.Println(colorDim + "   Example: precision 10" + colorReset)
		return
	}

	precision, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Printf(colorRed+"Invalid number: %s\n"+colorReset, parts[1])
		return
	}

	if err := s.cfg.SetPrecision(precision); err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	if err := s.cfg.Save(); err != nil {
		fmt.Printf(colorYellow+"Warning: Failed to persist config: %v\n"+colorReset, err)
	}

	fmt.Printf(colorGreen+"Precision set to %d significant digits\n"+colorReset, s.cfg.Precision)
}

// runConversion performs and prints one unit conversion, shared by the
// `convert` subcommand and the REPL's `convert ...` command.
func (s *session) runConversion(valueStr, from, to string) error {
	var value float64
	if _, err := fmt.Sscanf(valueStr, "%f", &value); err != nil {
		return fmt.Errorf("invalid number: %s", valueStr)
	}

	result, err := units.Convert(number.FromReal(value), from, to)
	if err != nil {
		return fmt.Errorf("conversion error: %w", err)
	}

	fmt.Printf(colorBold+"%s %s"+colorReset+" = "+colorGreen+"%s %s\n"+colorReset,
		formatResult(number.FromReal(value), s.cfg.Precision), from,
		formatResult(result, s.cfg.Precision), to)
	return nil
}

// handleConversion processes unit conversion commands typed in the REPL.
func (s *session) handleConversion(input string) {
	parts := strings.Fields(input)
	if len(parts) != 5 || parts[3] != "to" {
		fmt.Println(colorRed + "Usage: " + colorReset + "convert <value> <from> to <to>")
		fmt.Println(colorDim + "   Example: convert 10 km to m" + colorReset)
		return
	}
	if err := s.runConversion(parts[1], parts[2], parts[4]); err != nil {
		fmt.Printf(colorRed+"%v\n"+colorReset, err)
	}
}

// handleExpression parses, evaluates, prints and records one line of
// input, dispatching to the `let`-binding path when the line declares
// one instead of evaluating to a value.
func (s *session) handleExpression(input string) {
	tokens, err := parser.ParseInfix(input, s.vars, s.funs, s.cfg.GraphVars, true)
	if err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}
	if tokens == nil {
		fmt.Println(colorGreen + "ok" + colorReset)
		return
	}

	graphVars := make([]number.Number, len(s.cfg.GraphVars))
	result := evaluator.Compute(tokens.Ref(), graphVars, s.funs, s.vars)

	fmt.Printf(colorBold+"Result: "+colorReset+"%s\n", formatResult(result, s.cfg.Precision))

	postfix := display.RPN(tokens.Ref(), s.vars, s.funs, s.cfg.GraphVars)
	if err := history.AddHistory(input, postfix, result); err != nil {
		fmt.Printf(colorYellow+"Warning: Failed to save to history: %v\n"+colorReset, err)
	}
}
