package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"contextcheck/internal/config"
	"contextcheck/internal/customdict"
	"contextcheck/internal/document"
	"contextcheck/internal/inference"
	"contextcheck/internal/spellcheck"
	"contextcheck/internal/vocabulary"
	"contextcheck/pkg/options"
)

type correctRequest struct {
	Tokens []document.Token `json:"tokens"`
}

type correctResponse struct {
	Original    string                         `json:"original"`
	Corrected   string                         `json:"corrected"`
	Performed   bool                           `json:"performed"`
	Suggestions map[int][]string               `json:"suggestions,omitempty"`
	Scores      map[int][]spellcheck.Candidate `json:"scores,omitempty"`
	Edits       []spellcheck.Edit              `json:"edits,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func main() {
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
	}
	applyEnv(&cfg)

	vocab, err := loadVocabulary(cfg.Vocabulary)
	if err != nil {
		log.Fatalf("vocabulary error: %v", err)
	}
	log.Printf("vocabulary loaded: %d words from %s", vocab.Len(), cfg.Vocabulary.Path)

	dict := openDictionary(cfg.Dictionary)
	if dict != nil {
		mergeUserDictionary(dict, vocab)
	}

	predictor := inference.NewClient(cfg.Model.URL, time.Duration(cfg.Model.TimeoutSeconds)*time.Second)
	checkerOpts := []options.Options{
		options.WithTopN(cfg.Checker.TopN),
		options.WithMaskToken(cfg.Model.MaskToken),
		options.WithWorkers(cfg.Checker.Workers),
	}
	if cfg.Checker.Debug {
		checkerOpts = append(checkerOpts, options.WithDebug())
	}
	checker := spellcheck.NewChecker(vocab, predictor, checkerOpts...)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req correctRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		resp, err := runCorrection(r.Context(), checker, req.Tokens)
		if errors.Is(err, spellcheck.ErrEmptyDocument) {
			writeError(w, http.StatusBadRequest, "document is empty")
			return
		}
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var req correctRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			resp, err := runCorrection(r.Context(), checker, req.Tokens)
			if err != nil {
				if err := conn.WriteJSON(map[string]string{"error": err.Error()}); err != nil {
					return
				}
				continue
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		word := strings.ToLower(strings.TrimSpace(req.Word))
		if dict != nil {
			if err := dict.Add(r.Context(), word); err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		vocab.Add(word)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			writeError(w, http.StatusBadRequest, "word is required")
			return
		}
		word = strings.ToLower(word)
		if dict != nil {
			if err := dict.Remove(r.Context(), word); err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
		}
		vocab.Remove(word)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	log.Printf("listening on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, mux))
}

func runCorrection(ctx context.Context, checker *spellcheck.Checker, tokens []document.Token) (*correctResponse, error) {
	doc := document.New(tokens)
	corrected, res, err := checker.Correct(ctx, doc)
	if err != nil {
		return nil, err
	}
	if corrected == "" {
		corrected = doc.Text()
	}
	return &correctResponse{
		Original:    doc.Text(),
		Corrected:   corrected,
		Performed:   res.Performed,
		Suggestions: res.Suggestions,
		Scores:      res.Scores,
		Edits:       res.Edits,
	}, nil
}

func loadVocabulary(cfg config.VocabularyConfig) (*vocabulary.Store, error) {
	if cfg.Mmap {
		return vocabulary.LoadMmap(cfg.Path)
	}
	return vocabulary.Load(cfg.Path)
}

func openDictionary(cfg config.DictionaryConfig) customdict.Store {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return customdict.NewRedis(client)
	case "file":
		return customdict.NewFile(cfg.FilePath)
	default:
		return nil
	}
}

func mergeUserDictionary(dict customdict.Store, vocab *vocabulary.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	words, err := dict.All(ctx)
	if err != nil {
		log.Printf("warning: user dictionary unavailable: %v", err)
		return
	}
	for _, w := range words {
		vocab.Add(w)
	}
	log.Printf("user dictionary merged: %d words", len(words))
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func applyEnv(cfg *config.Config) {
	cfg.Server.Addr = getenv("HTTP_ADDR", cfg.Server.Addr)
	cfg.Model.URL = getenv("MODEL_URL", cfg.Model.URL)
	cfg.Model.MaskToken = getenv("MASK_TOKEN", cfg.Model.MaskToken)
	cfg.Vocabulary.Path = getenv("VOCAB_PATH", cfg.Vocabulary.Path)
	cfg.Dictionary.Backend = getenv("DICT_BACKEND", cfg.Dictionary.Backend)
	cfg.Dictionary.RedisAddr = getenv("REDIS_ADDR", cfg.Dictionary.RedisAddr)
	cfg.Dictionary.RedisPassword = getenv("REDIS_PASSWORD", cfg.Dictionary.RedisPassword)
	cfg.Dictionary.RedisDB = getEnvInt("REDIS_DB", cfg.Dictionary.RedisDB)
	cfg.Dictionary.FilePath = getenv("DICT_FILE", cfg.Dictionary.FilePath)
	cfg.Checker.TopN = getEnvInt("TOP_N", cfg.Checker.TopN)
	cfg.Checker.Workers = getEnvInt("WORKERS", cfg.Checker.Workers)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
