package httpx

import (
	"net/http"
)

// staticHandler serves files from webFolder under /pub/. Directory listings
// are not exposed.
func staticHandler(webFolder string) http.Handler {
	fs := http.FileServer(noDirFS{http.Dir(webFolder)})
	return http.StripPrefix("/pub", fs)
}

type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		index, err := n.fs.Open(name + "/index.html")
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		_ = index.Close()
	}
	return f, nil
}
