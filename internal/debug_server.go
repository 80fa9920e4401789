package internal

import (
	"fmt"
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartDebugServer exposes operational endpoints on a separate listener:
// Prometheus metrics, a liveness probe and a raw dump of the document tree
// for inspection. Listens on all interfaces so it is reachable over the
// network in a lab setup.
func StartDebugServer(db *badger.DB, reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/tree", func(w http.ResponseWriter, r *http.Request) {
		prefix := []byte(r.URL.Query().Get("prefix"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					fmt.Fprintf(w, "/%s\t%s\n", item.Key(), val)
					return nil
				})
			}
			return nil
		})
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}
