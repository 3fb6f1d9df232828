package devwebserver

import (
	"flag"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const (
	packagePath = "github.com/silbinarywolf/toy-offside-board/cmd/dev-server/internal/devwebserver"
)

// Serve will serve a wasm build of the board to the web browser.
// This function will block until exit.
func Serve() {
	port := flag.String("port", ":8080", "address to listen on")
	tags := flag.String("tags", "", "a list of build tags to consider satisfied during the build")
	flag.Parse()

	// Setup
	arguments = Arguments{
		Port:      *port,
		Directory: ".",
		Tags:      *tags,
	}

	// Get default resources
	var err error
	wasmJSPath, err = getDefaultWasmJSPath()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	indexHTMLPath, err = getDefaultIndexHTMLPath(arguments.Directory)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Start server
	log.Printf("Listening on http://localhost%s...", arguments.Port)
	http.HandleFunc("/", handle)
	if err := http.ListenAndServe(arguments.Port, nil); err != nil {
		log.Fatal(err)
	}
}

var wasmJSPath string

var indexHTMLPath string

var (
	arguments    Arguments
	tmpOutputDir = ""
)

type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "debug"
}

func handle(w http.ResponseWriter, r *http.Request) {
	output, err := ensureTmpOutputDir()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Get path and package
	upath := r.URL.Path[1:]
	pkg := "./" + filepath.Dir(upath)
	base := filepath.Base(upath)
	if upath == "" || strings.HasSuffix(r.URL.Path, "/") {
		base = "index.html"
	}

	parts := strings.Split(upath, "/")
	if len(parts) > 0 && parts[0] == "asset" {
		switch ext := filepath.Ext(upath); ext {
		case ".png",
			".jpg",
			".gif",
			".yaml":
			log.Print("serving asset: " + upath)
			http.ServeFile(w, r, filepath.Join(arguments.Directory, upath))
		default:
			http.NotFound(w, r)
		}
		return
	}

	switch base {
	case "index.html":
		log.Print("serving index.html: " + indexHTMLPath)
		http.ServeFile(w, r, indexHTMLPath)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + wasmJSPath)
		http.ServeFile(w, r, wasmJSPath)
	case "main.wasm":
		wasmPath := filepath.Join(output, "main.wasm")
		if out, err := buildWasm(pkg, wasmPath); err != nil {
			log.Printf("%+v", err)
			log.Print(out)
			http.Error(w, out, http.StatusInternalServerError)
			return
		}
		f, err := os.Open(wasmPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	default:
		http.NotFound(w, r)
	}
}

// buildWasm rebuilds pkg on every request so a browser refresh always
// picks up the latest source
func buildWasm(pkg, output string) (string, error) {
	args := []string{"build", "-o", output}
	if arguments.Tags != "" {
		args = append(args, "-tags", arguments.Tags)
	}
	args = append(args, pkg)
	log.Print("go ", strings.Join(args, " "))
	cmdBuild := exec.Command(gobin(), args...)
	cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmdBuild.Dir = arguments.Directory
	out, err := cmdBuild.CombinedOutput()
	if err != nil {
		return string(out), errors.Wrapf(err, "unable to build %s", pkg)
	}
	if len(out) > 0 {
		log.Print(string(out))
	}
	return "", nil
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

func ensureTmpOutputDir() (string, error) {
	if tmpOutputDir != "" {
		return tmpOutputDir, nil
	}

	tmp, err := ioutil.TempDir("", "offside-dev-server")
	if err != nil {
		return "", errors.Wrap(err, "unable to create build directory")
	}
	tmpOutputDir = tmp
	return tmpOutputDir, nil
}

var (
	cmdDir string
	cmdErr error
)

func computeCmdSourceDir(dir string) (string, error) {
	if cmdDir == "" && cmdErr == nil {
		cmdDir, cmdErr = computeCmdSourceDirUncached(dir)
	}
	return cmdDir, cmdErr
}

func computeCmdSourceDirUncached(dir string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	cfg := &packages.Config{
		Dir: currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.Wrapf(err, "unable to load package %s", packagePath)
	}
	if len(pkgs) == 0 {
		return "", errors.New("Unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("Cannot find *.go files in:" + currentDir)
	}
	return filepath.Dir(pkg.GoFiles[0]), nil
}

// getDefaultWasmJSPath is the loader shipped with the Go toolchain, it
// has to match the compiler that builds main.wasm
func getDefaultWasmJSPath() (string, error) {
	path := filepath.Join(runtime.GOROOT(), "misc", "wasm", "wasm_exec.js")
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, "unable to find wasm_exec.js in GOROOT")
	}
	return path, nil
}

func getDefaultIndexHTMLPath(dir string) (string, error) {
	const baseName = "index.html"
	sourceDir, err := computeCmdSourceDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(sourceDir, baseName), nil
}
