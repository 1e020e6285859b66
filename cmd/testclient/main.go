// Command testclient exercises the interview prep API end to end
// against a running service: walks the question list, submits an
// answer recording and uploads a resume.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	serverAddr := flag.String("server", "http://localhost:8080", "Service base URL")
	audioFile := flag.String("audio", "", "Path to an answer recording (webm/wav) for /analyze_response")
	resumeFile := flag.String("resume", "", "Path to a resume (pdf/docx) for /upload")
	jobDescription := flag.String("job", "Backend engineer with Go and cloud experience", "Job description for /upload")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	walkQuestions(client, *serverAddr)

	if *audioFile != "" {
		analyzeAnswer(client, *serverAddr, *audioFile)
	}
	if *resumeFile != "" {
		uploadResume(client, *serverAddr, *resumeFile, *jobDescription)
	}
}

func walkQuestions(client *http.Client, base string) {
	for i := 0; ; i++ {
		resp, err := client.Get(fmt.Sprintf("%s/get_question/%d", base, i))
		if err != nil {
			log.Fatalf("get_question %d: %v", i, err)
		}
		var body struct {
			Question string `json:"question"`
			Index    int    `json:"index"`
			AudioURL string `json:"audio_url"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			log.Fatalf("decoding question %d: %v", i, err)
		}
		resp.Body.Close()

		log.Printf("question %d: %q audio=%q", body.Index, body.Question, body.AudioURL)
		if body.Index == -1 {
			return
		}
	}
}

func analyzeAnswer(client *http.Client, base, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening audio file: %v", err)
	}
	defer f.Close()

	resp := postFile(client, base+"/analyze_response", "audio", filepath.Base(path), f, nil)
	log.Printf("analyze_response: %s", resp)
}

func uploadResume(client *http.Client, base, path, job string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening resume file: %v", err)
	}
	defer f.Close()

	resp := postFile(client, base+"/upload", "resume", filepath.Base(path), f, map[string]string{
		"job_description": job,
	})
	log.Printf("upload: %s", resp)
}

func postFile(client *http.Client, url, field, filename string, file io.Reader, fields map[string]string) string {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		log.Fatalf("creating form file: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		log.Fatalf("copying file: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			log.Fatalf("writing field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		log.Fatalf("closing multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		log.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("posting to %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("reading response: %v", err)
	}
	return fmt.Sprintf("status=%d body=%s", resp.StatusCode, bytes.TrimSpace(body))
}
