package loader

import (
	"iptv-toolkit/m3u"
	"iptv-toolkit/playlist"
)

// row is one non-blank input line with its original 1-based line number.
type row struct {
	text string
	num  int
}

// pendingRecord accumulates the rows of the record currently being read:
// at most one #EXTINF row plus any pass-through rows, waiting for the
// payload row that closes it.
type pendingRecord struct {
	extinf    string
	extinfNum int
	extras    []string
}

// scanRows groups the rows of one chunk into channels. It never interprets
// chunk-external state: chunk boundaries are record-aligned, so every
// record is fully contained in the rows it receives.
//
// A payload row closes the open record. A second #EXTINF row before any
// payload row makes the first record dangling: it is skipped and reported.
// Comment and unrecognized tag rows are carried verbatim as extras of the
// record they precede.
func scanRows(rows []row, strictness Strictness) ([]*playlist.Channel, []Diagnostic) {
	var (
		channels []*playlist.Channel
		diags    []Diagnostic
		pending  *pendingRecord
	)
	for _, r := range rows {
		switch {
		case m3u.IsExtinfRow(r.text):
			if pending != nil && pending.extinf != "" {
				diags = append(diags, Diagnostic{
					Kind: DiagDanglingRecord,
					Line: pending.extinfNum,
					Row:  pending.extinf,
				})
				pending = nil
			}
			if pending == nil {
				pending = &pendingRecord{}
			}
			pending.extinf = r.text
			pending.extinfNum = r.num
		case m3u.IsCommentOrTagRow(r.text):
			if pending == nil {
				pending = &pendingRecord{}
			}
			pending.extras = append(pending.extras, r.text)
		default:
			channel, diag := buildChannel(pending, r, strictness)
			if diag != nil {
				diags = append(diags, *diag)
			}
			if channel != nil {
				channels = append(channels, channel)
			}
			pending = nil
		}
	}
	if pending != nil && pending.extinf != "" {
		diags = append(diags, Diagnostic{
			Kind: DiagDanglingRecord,
			Line: pending.extinfNum,
			Row:  pending.extinf,
		})
	}
	return channels, diags
}

// buildChannel closes a record on its payload row and tokenizes the
// #EXTINF row, if any.
func buildChannel(pending *pendingRecord, payload row, strictness Strictness) (*playlist.Channel, *Diagnostic) {
	if pending == nil || pending.extinf == "" {
		if strictness == Strict {
			return nil, &Diagnostic{
				Kind: DiagOrphanPayload,
				Line: payload.num,
				Row:  payload.text,
			}
		}
		channel := playlist.NewChannel()
		channel.URL = payload.text
		if pending != nil {
			channel.Extras = pending.extras
		}
		return channel, nil
	}
	extinf, err := m3u.ParseExtinf(pending.extinf)
	if err != nil {
		return nil, &Diagnostic{
			Kind: DiagMalformedDuration,
			Line: pending.extinfNum,
			Row:  pending.extinf,
		}
	}
	return &playlist.Channel{
		URL:      payload.text,
		Name:     extinf.Name,
		Duration: extinf.Duration,
		Attrs:    extinf.Attrs,
		Extras:   pending.extras,
	}, nil
}
