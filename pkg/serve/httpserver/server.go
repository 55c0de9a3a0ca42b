// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/antgroup/proxyselect/modules/systemproxy"
	"github.com/antgroup/proxyselect/pkg/config"
	"github.com/antgroup/proxyselect/pkg/version"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/sirupsen/logrus"
)

// Server answers proxy resolution queries against a registry and lets
// clients add or remove origins at runtime.
type Server struct {
	srv        *http.Server
	r          *mux.Router
	h          http.Handler
	registry   *systemproxy.Registry
	serverName string
}

func NewServer(sc *config.Server, registry *systemproxy.Registry) (*Server, error) {
	if sc == nil || registry == nil {
		return nil, errors.New("missing server config or registry")
	}
	s := &Server{
		srv: &http.Server{
			Addr:         sc.Listen,
			ReadTimeout:  sc.ReadTimeout.Duration,
			WriteTimeout: sc.WriteTimeout.Duration,
			IdleTimeout:  sc.IdleTimeout.Duration,
		},
		registry:   registry,
		serverName: version.GetServerVersion(),
	}
	r := mux.NewRouter()
	s.Router(r)
	s.r = r
	s.h = gzhttp.GzipHandler(r)
	s.srv.Handler = s
	return s, nil
}

func (s *Server) Router(r *mux.Router) {
	r.HandleFunc("/resolve", s.Resolve).Methods("GET")
	r.HandleFunc("/origins", s.ListOrigins).Methods("GET")
	r.HandleFunc("/origins/{name}", s.GetOrigin).Methods("GET")
	r.HandleFunc("/origins/{name}", s.PutOrigin).Methods("PUT")
	r.HandleFunc("/origins/{name}", s.DeleteOrigin).Methods("DELETE")
	r.HandleFunc("/proxy.pac", s.PAC).Methods("GET")
}

func (s *Server) ListenAndServe() error {
	logrus.Infof("proxyselect listen on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func logResponse(hw *ResponseWriter, r *http.Request, tr *trackedReader, spent time.Duration) {
	message := r.Header.Get(ErrorMessageKey)
	switch statusCode := hw.StatusCode(); {
	case statusCode >= http.StatusInternalServerError:
		logrus.Errorf("[%s] %s %s status: %d received: %d written: %d spent: %v message: %s", hw.RemoteAddr(), r.Method, r.RequestURI, statusCode, tr.received, hw.Written(), spent, message)
	case statusCode >= http.StatusBadRequest:
		logrus.Warnf("[%s] %s %s status: %d received: %d written: %d spent: %v message: %s", hw.RemoteAddr(), r.Method, r.RequestURI, statusCode, tr.received, hw.Written(), spent, message)
	default:
		logrus.Infof("[%s] %s %s status: %d received: %d written: %d spent: %v", hw.RemoteAddr(), r.Method, r.RequestURI, statusCode, tr.received, hw.Written(), spent)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// remove multiple slash and ./..
	if r.URL != nil {
		r.URL.Path = path.Clean(r.URL.Path)
	}
	w.Header().Set("Server", s.serverName)
	tr := newTrackedReader(r.Body)
	r.Body = tr
	now := time.Now()
	hw := NewResponseWriter(w, r)
	s.h.ServeHTTP(hw, r)
	logResponse(hw, r, tr, time.Since(now))
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown http server %v", err)
		return err
	}
	return nil
}
