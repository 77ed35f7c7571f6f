package config_test

import (
	// Stdlib
	"io/ioutil"
	"os"
	"path/filepath"

	// Internal
	"github.com/salsaflow/release-bump/config"

	// Vendor
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("loading the configuration", func() {

	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "release-bump-config")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("should use the defaults when the file is missing", func() {
		conf, err := config.Load(filepath.Join(dir, config.LocalConfigFilename))
		Expect(err).ToNot(HaveOccurred())
		Expect(conf.Manifest).To(Equal("setup.py"))
		Expect(conf.TagPrefix).To(Equal("v"))
		Expect(conf.AnnotatedTags).To(BeFalse())
		Expect(conf.RollbackOnFailure).To(BeFalse())

		msg, err := conf.FormatCommitMessage(&config.CommitMessageData{Tag: "v0.2.0"})
		Expect(err).ToNot(HaveOccurred())
		Expect(msg).To(Equal("New release: v0.2.0"))
	})

	It("should read the file", func() {
		path := filepath.Join(dir, config.LocalConfigFilename)
		content := `
manifest: pkg/setup.py
tag_prefix: release-
commit_message: "Release {{.Version}} (was {{.PreviousVersion}})"
annotated_tags: true
rollback_on_failure: true
`
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())

		conf, err := config.Load(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(conf.Manifest).To(Equal("pkg/setup.py"))
		Expect(conf.TagPrefix).To(Equal("release-"))
		Expect(conf.AnnotatedTags).To(BeTrue())
		Expect(conf.RollbackOnFailure).To(BeTrue())

		msg, err := conf.FormatCommitMessage(&config.CommitMessageData{
			Tag:             "release-1.0.0",
			Version:         "1.0.0",
			PreviousVersion: "0.9.1",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(msg).To(Equal("Release 1.0.0 (was 0.9.1)"))
	})

	It("should fill in the keys not set", func() {
		conf, err := config.Parse([]byte("annotated_tags: true\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(conf.Manifest).To(Equal(config.DefaultManifest))
		Expect(conf.CommitMessage).To(Equal(config.DefaultCommitMessage))
		Expect(conf.AnnotatedTags).To(BeTrue())
	})

	It("should reject invalid YAML", func() {
		_, err := config.Parse([]byte("manifest: [\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should reject an invalid commit message template", func() {
		_, err := config.Parse([]byte("commit_message: \"{{.Tag\"\n"))
		Expect(err).To(HaveOccurred())
	})
})
