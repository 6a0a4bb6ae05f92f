package cli

import (
	"io"

	"github.com/spf13/cobra"

	"textkit/internal/document"
)

var (
	encryptOut string
	decryptOut string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt FILE",
	Short: "Obfuscate FILE with a Caesar shift",
	Long: `Rotate every ASCII letter of FILE by the configured shift (3 by default)
and write the result to --output, or to stdout when no output is given.

The shift cipher is an obfuscation, not encryption: anyone can reverse it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		doc, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		if encryptOut == "" {
			_, err = io.WriteString(cmd.OutOrStdout(), svc.Encrypt(doc.Content))
			return err
		}
		written, err := svc.SaveEncrypted(encryptOut, doc.Content)
		if err != nil {
			return err
		}
		cmd.PrintErrf("Encrypted text saved to %s\n", written)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt FILE",
	Short: "Reverse the Caesar shift applied by encrypt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		doc, err := svc.LoadDocument(args[0])
		if err != nil {
			return err
		}
		plain := svc.Decrypt(doc.Content)
		if decryptOut == "" {
			_, err = io.WriteString(cmd.OutOrStdout(), plain)
			return err
		}
		written, err := document.Write(decryptOut, plain, appCfg.Files.DefaultExtension)
		if err != nil {
			return err
		}
		cmd.PrintErrf("Decrypted text saved to %s\n", written)
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptOut, "output", "o", "", "file to write (default stdout)")
	decryptCmd.Flags().StringVarP(&decryptOut, "output", "o", "", "file to write (default stdout)")
	rootCmd.AddCommand(encryptCmd, decryptCmd)
}
