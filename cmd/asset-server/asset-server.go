package main

import (
	"flag"
	"log"
	"net/http"
)

// main serves a static build of the board, ie. main.wasm, wasm_exec.js
// and index.html copied into a "dist" folder
func main() {
	dir := flag.String("dir", "./dist", "folder to serve")
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	fs := http.FileServer(http.Dir(*dir))
	http.Handle("/", fs)

	log.Printf("Serving %s on %s...", *dir, *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
