package cmd

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ChannelAwareInventory enables per-channel stock records as the
	// authoritative availability source.
	ChannelAwareInventory bool
	// InventoryFallbackMode is SHARED_POOL or NO_FALLBACK.
	InventoryFallbackMode string
	// CarrierStrategy is the default carrier selection strategy wire name.
	CarrierStrategy string
}
