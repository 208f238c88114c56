// Copyright ©2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iosupport

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/biogo/ncbi"
)

// GeneDescriptions holds the EBI gene description collaborator's
// records, keyed by sequence access number (spec §6: "EBI gene
// description: tab-delimited, keyed by sequence access-number").
type GeneDescriptions map[string]string

// ParseGeneDescriptions reads a tab-delimited "access_number\tdescription"
// stream, following the same tab-delimited record convention
// github.com/biogo/ncbi's own record scanners use (even though the
// target service here is EBI, not NCBI): one record per line, leading
// and trailing whitespace trimmed from the description field.
func ParseGeneDescriptions(r io.Reader) (GeneDescriptions, error) {
	descs := GeneDescriptions{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		access, desc, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("iosupport: malformed gene description line %q", line)
		}
		descs[access] = strings.TrimSpace(desc)
	}
	return descs, sc.Err()
}

// FetchGeneDescriptions retrieves the gene description record for
// access from the EBI endpoint at baseURL (a "{baseURL}/{access}"
// GET returning one tab-delimited line), using client (or
// http.DefaultClient if nil). Every call first sets ncbi.SetTimeout,
// which bounds biogo/ncbi's own HTTP helpers; the GET itself goes
// through client and is not affected by that setting.
func FetchGeneDescriptions(client *http.Client, baseURL, access string) (string, error) {
	ncbi.SetTimeout(10 * time.Second)
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(strings.TrimRight(baseURL, "/") + "/" + access)
	if err != nil {
		return "", fmt.Errorf("iosupport: fetching gene description for %q: %w", access, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("iosupport: gene description request for %q: status %s", access, resp.Status)
	}
	descs, err := ParseGeneDescriptions(resp.Body)
	if err != nil {
		return "", err
	}
	return descs[access], nil
}
