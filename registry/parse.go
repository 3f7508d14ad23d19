package registry

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/netaddr/netaddr/internal/xlog"
)

const (
	hexMarker    = "(hex)"
	base16Marker = "(base 16)"
)

// parseOUIText scans the IEEE oui.txt flat-file format:
//
//	00-CA-FE   (hex)        ACME CORPORATION
//	00CAFE     (base 16)        ACME CORPORATION
//	                1 MAIN STREET
//	                SPRINGFIELD
//	                UNITED STATES
//
// It returns a prefix24 -> entries index plus a count of lines skipped
// for being malformed; skipped lines never abort the build.
func parseOUIText(r io.Reader, logger xlog.Logger) (map[uint32][]OUIEntry, int) {
	index := make(map[uint32][]OUIEntry)
	warnings := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	seenMarker := false
	var cur *OUIEntry

	flush := func() {
		if cur == nil {
			return
		}
		cur.Index = len(index[cur.Prefix24])
		index[cur.Prefix24] = append(index[cur.Prefix24], *cur)
		cur = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.Contains(line, hexMarker) {
			seenMarker = true
			flush()
			fields := strings.Fields(line)
			if len(fields) < 2 {
				warnings++
				logWarn(logger, "skipping malformed oui record header", "line", line)
				continue
			}
			prefix, err := strconv.ParseUint(strings.ReplaceAll(fields[0], "-", ""), 16, 32)
			if err != nil {
				warnings++
				logWarn(logger, "skipping malformed oui prefix", "line", line, "reason", err.Error())
				continue
			}
			cur = &OUIEntry{Prefix24: uint32(prefix), Org: strings.TrimSpace(strings.Join(fields[2:], " "))}
			continue
		}
		if !seenMarker {
			continue
		}
		if strings.Contains(line, base16Marker) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || cur == nil {
			continue
		}
		cur.Address = append(cur.Address, trimmed)
	}
	flush()
	return index, warnings
}

// parseIABText scans the IEEE iab.txt flat-file format:
//
//	00-50-C2   (hex)        ACME CORPORATION
//	ABC000-ABCFFF     (base 16)        ACME CORPORATION
//	                1 MAIN STREET
//	                SPRINGFIELD
//	                UNITED STATES
//
// The 36-bit prefix is derived by concatenating the hex-marker base OUI
// with the base16-marker block's leading hex digits and shifting out the
// 12 bits reserved for the sub-assignment.
func parseIABText(r io.Reader, logger xlog.Logger) (map[uint64][]IABEntry, int) {
	index := make(map[uint64][]IABEntry)
	warnings := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	seenMarker := false
	var basePrefixHex, org string
	var pending bool
	var cur *IABEntry

	flush := func() {
		if cur == nil {
			return
		}
		index[cur.Prefix36] = append(index[cur.Prefix36], *cur)
		cur = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.Contains(line, hexMarker) {
			seenMarker = true
			flush()
			fields := strings.Fields(line)
			if len(fields) < 2 {
				warnings++
				logWarn(logger, "skipping malformed iab record header", "line", line)
				pending = false
				continue
			}
			basePrefixHex = strings.ReplaceAll(fields[0], "-", "")
			org = strings.TrimSpace(strings.Join(fields[2:], " "))
			pending = true
			continue
		}
		if !seenMarker {
			continue
		}
		if strings.Contains(line, base16Marker) {
			if !pending {
				warnings++
				logWarn(logger, "skipping orphan iab base16 line", "line", line)
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 1 {
				warnings++
				pending = false
				continue
			}
			suffixHex := strings.SplitN(fields[0], "-", 2)[0]
			val, err := strconv.ParseUint(basePrefixHex+suffixHex, 16, 64)
			if err != nil {
				warnings++
				logWarn(logger, "skipping malformed iab prefix", "line", line, "reason", err.Error())
				pending = false
				continue
			}
			cur = &IABEntry{Prefix36: val >> 12, Org: org}
			pending = false
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || cur == nil {
			continue
		}
		cur.Address = append(cur.Address, trimmed)
	}
	flush()
	return index, warnings
}

func logWarn(logger xlog.Logger, msg string, kv ...string) {
	if logger == nil {
		return
	}
	attrs := make([]slog.Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, slog.String(kv[i], kv[i+1]))
	}
	logger.Warn(context.Background(), msg, attrs...)
}
