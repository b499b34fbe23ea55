package events

import "github.com/atomicstack/dirpanes/internal/logging"

type EditTracer struct{}

type SearchTracer struct{}

type PaneTracer struct{}

var (
	Edit   = EditTracer{}
	Search = SearchTracer{}
	Pane   = PaneTracer{}
)

func (EditTracer) Enter(target string) {
	logging.Trace("edit.enter", map[string]interface{}{"target": target})
}

func (EditTracer) Cancel(target string) {
	logging.Trace("edit.cancel", map[string]interface{}{"target": target})
}

func (EditTracer) Append(target, buffer string) {
	logging.Trace("edit.append", map[string]interface{}{"target": target, "buffer": buffer})
}

func (EditTracer) Backspace(target, buffer string) {
	logging.Trace("edit.backspace", map[string]interface{}{"target": target, "buffer": buffer})
}

func (EditTracer) Cursor(target string, cursor int) {
	logging.Trace("edit.cursor", map[string]interface{}{"target": target, "cursor": cursor})
}

func (EditTracer) Commit(target, path string, entries int) {
	logging.Trace("edit.commit", map[string]interface{}{
		"target":  target,
		"path":    path,
		"entries": entries,
	})
}

func (SearchTracer) Queue(seq int, query string) {
	logging.Trace("search.queue", map[string]interface{}{"seq": seq, "query": query})
}

func (SearchTracer) Result(seq, count int) {
	logging.Trace("search.result", map[string]interface{}{"seq": seq, "count": count})
}

func (SearchTracer) Error(seq int, err error) {
	if err == nil {
		return
	}
	logging.Trace("search.error", map[string]interface{}{"seq": seq, "error": err.Error()})
}

func (PaneTracer) Loaded(target, path string, entries int) {
	logging.Trace("pane.loaded", map[string]interface{}{
		"target":  target,
		"path":    path,
		"entries": entries,
	})
}
