package fireplace

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/vaughan0/go-ini"
)

// S3Input is an InputReader that reads an object from S3.
type S3Input struct {
	Client s3iface.S3API
	Bucket string
	Key    string
}

// NewS3Input returns an S3Input for a URL of the form s3://bucket/key,
// using a client configured by LoadSharedConfig.
func NewS3Input(rawURL string) (*S3Input, error) {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	config, err := LoadSharedConfig()
	if err != nil {
		return nil, err
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("cannot create AWS session: %s", err)
	}
	return &S3Input{
		Client: s3.New(sess),
		Bucket: bucket,
		Key:    key,
	}, nil
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(rawURL string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(rawURL, "s3://")
	if rest == rawURL {
		return "", "", fmt.Errorf("bad S3 URL %q: missing s3:// prefix", rawURL)
	}
	i := strings.IndexByte(rest, '/')
	if i <= 0 || i == len(rest)-1 {
		return "", "", fmt.Errorf("bad S3 URL %q: want s3://bucket/key", rawURL)
	}
	return rest[:i], rest[i+1:], nil
}

func (s *S3Input) ReadInput() (string, error) {
	resp, err := s.Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return "", fmt.Errorf("error fetching s3://%s/%s: %s", s.Bucket, s.Key, err)
	}
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return decode(b)
}

// LoadSharedConfig builds an AWS config from ~/.aws.
// The region comes from AWS_REGION or the default profile in ~/.aws/config.
// If ~/.aws/credentials exists, its default profile is used; otherwise the
// SDK's default credential chain applies.
func LoadSharedConfig() (*aws.Config, error) {
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("cannot get current user: %s", err)
	}
	if u.HomeDir == "" {
		return nil, fmt.Errorf("current user (%s) has no home dir", u.Username)
	}
	return loadSharedConfig(filepath.Join(u.HomeDir, ".aws"))
}

func loadSharedConfig(dir string) (*aws.Config, error) {
	config := new(aws.Config)

	credsFile := filepath.Join(dir, "credentials")
	if _, err := os.Stat(credsFile); err == nil {
		config.Credentials = credentials.NewSharedCredentials(credsFile, "default")
	}

	if region := os.Getenv("AWS_REGION"); region != "" {
		return config.WithRegion(region), nil
	}
	configFile := filepath.Join(dir, "config")
	f, err := ini.LoadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("error loading aws config (%s): %s", configFile, err)
	}
	if region, ok := f.Get("default", "region"); ok {
		config.Region = aws.String(region)
	}
	return config, nil
}
