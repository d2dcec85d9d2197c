// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/decodoku/geometry"
	"github.com/katalvlaran/decodoku/pauli"
	"github.com/katalvlaran/decodoku/session"
	"github.com/katalvlaran/decodoku/syndrome"
)

var (
	firedColor  = color.New(color.FgRed, color.Bold)
	quietColor  = color.New(color.FgHiBlack)
	errorColor  = color.New(color.FgYellow, color.Bold)
	probeColor  = color.New(color.FgCyan, color.Underline)
	okColor     = color.New(color.FgHiGreen)
	failColor   = color.New(color.FgRed)
	headerColor = color.New(color.Bold)
)

// renderSyndrome prints fired checks in red. Non-binary syndromes keep the
// dotted form of syndrome.Syndrome.String.
func renderSyndrome(s syndrome.Syndrome, base int) string {
	sep := ""
	if base > 2 {
		sep = "."
	}
	parts := make([]string, len(s))
	for i, v := range s {
		txt := strconv.Itoa(v)
		if v != 0 {
			parts[i] = firedColor.Sprint(txt)
		} else {
			parts[i] = quietColor.Sprint(txt)
		}
	}

	return strings.Join(parts, sep)
}

// renderRegister prints one symbol per unit: errors in yellow, probed units
// underlined in cyan.
func renderRegister(alg pauli.Algebra, symbols []int, probed map[int]bool) string {
	sep := ""
	if alg.Base() > 2 {
		sep = ","
	}
	parts := make([]string, len(symbols))
	for j, s := range symbols {
		txt := alg.Format(s)
		switch {
		case probed[j]:
			parts[j] = probeColor.Sprint(txt)
		case s != alg.Identity():
			parts[j] = errorColor.Sprint(txt)
		default:
			parts[j] = txt
		}
	}

	return strings.Join(parts, sep)
}

// renderChains prints the error chains of a toroidal register and the
// vertices where they end. Other topologies print nothing.
func renderChains(out io.Writer, sess *session.Session) error {
	if sess.Spec().Topology() != geometry.TopologyToric {
		return nil
	}
	alg := sess.Algebra()
	var units []int
	for u, s := range sess.ErrorVector() {
		if s != alg.Identity() {
			units = append(units, u)
		}
	}
	ch, err := geometry.ToricChains(sess.Spec(), units)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "chains:    %v\n", ch.Chains)
	if len(ch.Defects) == 0 {
		fmt.Fprintln(out, "defects:   none")
		return nil
	}
	fmt.Fprintf(out, "defects:   %s\n", firedColor.Sprint(strings.Join(ch.Defects, " ")))

	return nil
}

func verdict(ok bool) string {
	if ok {
		return okColor.Sprint("correct")
	}

	return failColor.Sprint("wrong")
}
