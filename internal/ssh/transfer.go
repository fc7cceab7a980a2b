package ssh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/sftp"
)

// TransferChannel is the subset of the SFTP client the uploader needs.
// Tests substitute an in-memory implementation.
type TransferChannel interface {
	Create(path string) (io.WriteCloser, error)
	Mkdir(path string) error
}

// ProgressFunc is called with the number of files uploaded so far and the
// batch total.
type ProgressFunc func(uploaded, total int)

// progressInterval is the batch cadence: one report per this many files,
// plus one after the final file.
const progressInterval = 10

// ItemResult records the outcome of one transferred file.
type ItemResult struct {
	LocalPath  string
	RemotePath string
	Err        error
}

// BatchResult aggregates a directory upload: per-item outcomes in upload
// order, plus counts.
type BatchResult struct {
	Total     int
	Succeeded int
	Items     []ItemResult
}

// Uploader copies local files to the remote host over a transfer channel.
type Uploader struct {
	channel TransferChannel

	// Progress, if set, is invoked after every 10th file of a batch and
	// after the final one.
	Progress ProgressFunc
}

// NewUploader creates an uploader on top of an open transfer channel.
func NewUploader(channel TransferChannel) *Uploader {
	return &Uploader{channel: channel}
}

// Channel adapts an *sftp.Client to the TransferChannel interface.
func Channel(client *sftp.Client) TransferChannel {
	return sftpChannel{client}
}

type sftpChannel struct {
	client *sftp.Client
}

func (s sftpChannel) Create(path string) (io.WriteCloser, error) {
	return s.client.Create(path)
}

func (s sftpChannel) Mkdir(path string) error {
	return s.client.Mkdir(path)
}

// UploadFile streams one local file to remotePath, overwriting any existing
// remote file. The local path is checked before any network activity.
func (u *Uploader) UploadFile(localPath, remotePath string) error {
	info, err := os.Stat(localPath)
	if err != nil || !info.Mode().IsRegular() {
		return &Error{Kind: KindLocalPathNotFound, Op: "upload", Err: fmt.Errorf("local path not found: %s", localPath)}
	}
	return u.put(localPath, remotePath)
}

// UploadDirectory uploads every regular file directly inside localDir to
// remoteDir. Subdirectories are skipped, not recursed into.
func (u *Uploader) UploadDirectory(localDir, remoteDir string) (*BatchResult, error) {
	return u.UploadDirectoryFiltered(localDir, remoteDir, nil)
}

// UploadDirectoryFiltered is UploadDirectory restricted to files whose name
// ends in one of the given extensions. A nil or empty filter matches every
// file. An empty batch is a success with Total 0.
//
// The batch is fail-fast: the first failed item aborts the remainder, and
// files already uploaded stay on the remote host.
func (u *Uploader) UploadDirectoryFiltered(localDir, remoteDir string, extensions []string) (*BatchResult, error) {
	info, err := os.Stat(localDir)
	if err != nil || !info.IsDir() {
		return nil, &Error{Kind: KindLocalPathNotFound, Op: "upload", Err: fmt.Errorf("local directory not found: %s", localDir)}
	}

	files, err := listFiles(localDir, extensions)
	if err != nil {
		return nil, Classify("upload", err)
	}

	result := &BatchResult{Total: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	u.ensureDir(remoteDir)

	for i, name := range files {
		localPath := filepath.Join(localDir, name)
		remotePath := remoteDir + "/" + name
		item := ItemResult{LocalPath: localPath, RemotePath: remotePath}

		if err := u.put(localPath, remotePath); err != nil {
			item.Err = err
			result.Items = append(result.Items, item)
			return result, err
		}

		result.Items = append(result.Items, item)
		result.Succeeded++

		if u.Progress != nil && ((i+1)%progressInterval == 0 || i+1 == len(files)) {
			u.Progress(i+1, len(files))
		}
	}

	return result, nil
}

// ensureDir attempts to create the remote directory. Errors are ignored:
// "already exists" is the common case, and any other mkdir failure shows up
// again on the first file upload.
func (u *Uploader) ensureDir(remoteDir string) {
	_ = u.channel.Mkdir(remoteDir)
}

func (u *Uploader) put(localPath, remotePath string) error {
	local, err := os.Open(localPath)
	if err != nil {
		return &Error{Kind: KindLocalPathNotFound, Op: "upload", Err: err}
	}
	defer local.Close()

	remote, err := u.channel.Create(remotePath)
	if err != nil {
		return Classify(fmt.Sprintf("upload %s", filepath.Base(localPath)), err)
	}

	if _, err := io.Copy(remote, local); err != nil {
		remote.Close()
		return Classify(fmt.Sprintf("upload %s", filepath.Base(localPath)), err)
	}

	if err := remote.Close(); err != nil {
		return Classify(fmt.Sprintf("upload %s", filepath.Base(localPath)), err)
	}

	return nil
}

// listFiles returns the names of regular files directly inside dir, in the
// directory's lexical enumeration order, optionally filtered by extension.
func listFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if len(extensions) > 0 && !hasExtension(entry.Name(), extensions) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
