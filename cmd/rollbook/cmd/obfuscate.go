package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// obfuscateCmd represents the obfuscate command
var obfuscateCmd = &cobra.Command{
	Use:   "obfuscate",
	Short: "Toggle XOR obfuscation of the record file",
	Long: `Apply a byte-wise XOR with a single-character key to the record file in
place. The transform is its own inverse: run the command again with the same
key to restore the original content. No flag is kept on disk, so remember
whether the file is currently transformed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("key")
		if len(key) != 1 {
			return fmt.Errorf("--key must be exactly one character")
		}
		if !confirm("Toggle XOR obfuscation of the record file?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := manager.Obfuscate(key[0]); err != nil {
			return err
		}
		fmt.Printf("XOR applied with key %q. Run again with the same key to undo.\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(obfuscateCmd)
	obfuscateCmd.Flags().String("key", "", "Single-character XOR key")
	obfuscateCmd.MarkFlagRequired("key")
}
