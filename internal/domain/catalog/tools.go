package catalog

import "antidoshirak/internal/domain/entities"

// Static pricing table, last synced 2026-01-08. Prices are lightning
// tokens per unit.
var defaultTools = []entities.ToolDefinition{
	// Video
	{ID: "video_sora_2_pro", Name: "SORA 2 Pro", UnitPrice: 50.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_sora_2", Name: "SORA 2", UnitPrice: 18.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_veo_3_1", Name: "VEO 3.1", UnitPrice: 119.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_veo_3_1_fast", Name: "VEO 3.1 Fast", UnitPrice: 19.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_veo_3_1_fast_relax", Name: "VEO 3.1 Fast Relax", UnitPrice: 13.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_runway_gen4", Name: "Runway Gen-4", UnitPrice: 14.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_runway_gen3", Name: "Runway Gen-3", UnitPrice: 14.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_runway_style", Name: "RW: Video Stylizer", UnitPrice: 14.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_luma", Name: "Luma Dream Machine", UnitPrice: 14.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_kling", Name: "Kling AI", UnitPrice: 6.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_pika", Name: "Pika Full", UnitPrice: 12.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_hailuo_02", Name: "Hailuo MiniMax 02", UnitPrice: 14.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_hailuo_01", Name: "Hailuo MiniMax 01", UnitPrice: 8.5, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_mj", Name: "MidJourney Video", UnitPrice: 15.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_seedance", Name: "Seedance Lite/Pro", UnitPrice: 6.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_higgsfield", Name: "Higgsfield", UnitPrice: 12.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_topaz", Name: "Topaz AI", UnitPrice: 1.0, Unit: entities.UnitSecond, Category: entities.CategoryVideo},
	{ID: "video_upscale_runway", Name: "RunWay Upscale x4", UnitPrice: 5.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},
	{ID: "video_upscale_clarity", Name: "Clarity Upscaler", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryVideo},

	// Avatar & lipsync
	{ID: "avatar_heygen_4", Name: "HeyGen Avatar 4", UnitPrice: 1.2, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},
	{ID: "avatar_runway_act_two", Name: "RunWay Act-Two", UnitPrice: 2.0, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},
	{ID: "avatar_hedra", Name: "Hedra", UnitPrice: 2.7, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},
	{ID: "avatar_sync_runway", Name: "Lipsync (Runway)", UnitPrice: 2.7, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},
	{ID: "avatar_sync_kling", Name: "Lipsync (Kling)", UnitPrice: 1.2, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},
	{ID: "avatar_creation", Name: "Avatar Creation", UnitPrice: 0.87, Unit: entities.UnitSecond, Category: entities.CategoryAvatar},

	// Image
	{ID: "img_flux_1_1_ultra", Name: "Flux 1.1 Pro Ultra", UnitPrice: 2.5, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_flux_1_1_pro", Name: "Flux 1.1 Pro", UnitPrice: 1.5, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_flux_1_pro", Name: "Flux 1 Pro", UnitPrice: 0.8, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_flux_1", Name: "Flux 1", UnitPrice: 0.3, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_flux_lora", Name: "Flux LoRa Train", UnitPrice: 0.18, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_recraft_v3_vec", Name: "Recraft v3 Vector", UnitPrice: 4.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_recraft_v3", Name: "Recraft v3", UnitPrice: 2.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_dalle_3_turbo", Name: "Dall-e 3 Turbo", UnitPrice: 1.5, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_imagen_4", Name: "Google Imagen 4", UnitPrice: 1.5, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_mj_edit", Name: "MidJourney Editor", UnitPrice: 1.5, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_mj", Name: "MidJourney Full", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_ideogram", Name: "Ideogram", UnitPrice: 0.9, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_sora", Name: "SORA Images", UnitPrice: 0.8, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_seedream_45", Name: "Seedream 4.5", UnitPrice: 2.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_seedream", Name: "Seedream", UnitPrice: 1.2, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_kling_kolors", Name: "Kling Kolors", UnitPrice: 1.1, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_faceswap", Name: "Face Swap", UnitPrice: 0.15, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_upscale_syntx", Name: "Syntx Enhancer x2", UnitPrice: 0.4, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_mix", Name: "Image Mixing", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},
	{ID: "img_describe", Name: "Image Describe", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryImage},

	// Audio
	{ID: "audio_elevenlabs", Name: "ElevenLabs Music", UnitPrice: 16.0, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},
	{ID: "audio_udio", Name: "Udio AI", UnitPrice: 10.0, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},
	{ID: "audio_suno", Name: "Suno AI", UnitPrice: 8.0, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},
	{ID: "audio_tts_eleven", Name: "ElevenLabs TTS", UnitPrice: 2.0, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},
	{ID: "audio_tts_openai", Name: "OpenAI TTS", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryAudio},

	// Text / LLM
	{ID: "text_gpt4o", Name: "GPT-4o", UnitPrice: 1.0, Unit: entities.UnitGeneration, Category: entities.CategoryText},
	{ID: "text_claude_3_5_sonnet", Name: "Claude 3.5 Sonnet", UnitPrice: 1.5, Unit: entities.UnitGeneration, Category: entities.CategoryText},
	{ID: "text_gemini_pro", Name: "Gemini 1.5 Pro", UnitPrice: 0.5, Unit: entities.UnitGeneration, Category: entities.CategoryText},
}
