// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package httpserver

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/antgroup/proxyselect/pkg/config"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
)

type ResolveResponse struct {
	URI     string                 `json:"uri"`
	Proxies []systemproxy.Endpoint `json:"proxies"`
}

// Resolve: GET /resolve?uri=https://example.com
func (s *Server) Resolve(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("uri")
	var u *url.URL
	if len(raw) != 0 {
		var err error
		if u, err = url.Parse(raw); err != nil {
			renderFailureFormat(w, r, http.StatusBadRequest, "bad uri: %v", err)
			return
		}
	}
	JsonEncode(w, &ResolveResponse{URI: raw, Proxies: s.registry.Select(u)})
}

func (s *Server) ListOrigins(w http.ResponseWriter, r *http.Request) {
	JsonEncode(w, s.registry.Snapshot())
}

func (s *Server) GetOrigin(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	schemes, ok := s.registry.Lookup(name)
	if !ok {
		renderFailureFormat(w, r, http.StatusNotFound, "origin '%s' not found", name)
		return
	}
	JsonEncode(w, &systemproxy.Origin{Name: name, Schemes: schemes})
}

// PutOrigin: PUT /origins/{name} with body {"http": ["proxy:3128"], ...}
func (s *Server) PutOrigin(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var body map[string][]string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MiByte)).Decode(&body); err != nil {
		renderFailureFormat(w, r, http.StatusBadRequest, "input body error: %v", err)
		return
	}
	schemes := make(systemproxy.SchemeMap, len(body))
	for scheme, proxies := range body {
		scheme = strings.ToLower(scheme)
		for _, p := range proxies {
			ep, err := systemproxy.ParseEndpoint(p)
			if err != nil {
				renderFailureFormat(w, r, http.StatusBadRequest, "scheme '%s' proxy '%s': %v", scheme, p, err)
				return
			}
			schemes[scheme] = append(schemes[scheme], ep)
		}
		if _, ok := schemes[scheme]; !ok {
			schemes[scheme] = []systemproxy.Endpoint{}
		}
	}
	s.registry.Add(name, schemes)
	logrus.Infof("origin '%s' updated: %d schemes", name, len(schemes))
	JsonEncode(w, &systemproxy.Origin{Name: name, Schemes: schemes})
}

func (s *Server) DeleteOrigin(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !s.registry.Remove(name) {
		renderFailureFormat(w, r, http.StatusNotFound, "origin '%s' not found", name)
		return
	}
	logrus.Infof("origin '%s' removed", name)
	w.WriteHeader(http.StatusNoContent)
}

// PAC: GET /proxy.pac, with a content hash ETag so browsers can revalidate.
func (s *Server) PAC(w http.ResponseWriter, r *http.Request) {
	var b bytes.Buffer
	if err := systemproxy.WritePAC(&b, s.registry.Snapshot()); err != nil {
		renderFailure(w, r, http.StatusInternalServerError, "internal server error")
		r.Header.Set(ErrorMessageKey, err.Error())
		return
	}
	h := blake3.New()
	_, _ = h.Write(b.Bytes())
	etag := `"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); len(match) != 0 && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", PAC_MIME)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Bytes())
}
