package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Neptune, truncated to the leading published terms.
// The radius vector stops at power 3 in the published theory.
var neptuneModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 5.31188633046, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01798475530, Phase: 2.90101273890, Freq: 38.13303563780},
			{Amp: 0.01019727652, Phase: 0.48580922867, Freq: 1.48447270830},
			{Amp: 0.00124531845, Phase: 4.83008090676, Freq: 36.64856292950},
			{Amp: 0.00042064466, Phase: 5.41054993053, Freq: 2.96894541660},
			{Amp: 0.00037714584, Phase: 6.09221808686, Freq: 35.16409022120},
			{Amp: 0.00033784738, Phase: 1.24488874087, Freq: 76.26607127560},
			{Amp: 0.00016482741, Phase: 0.00007727998, Freq: 491.55792945680},
			{Amp: 0.00009198584, Phase: 4.93747051954, Freq: 39.61750834610},
			{Amp: 0.00008994250, Phase: 0.27462171806, Freq: 175.16605980020},
			{Amp: 0.00004216242, Phase: 1.98711875978, Freq: 73.29712585900},
			{Amp: 0.00003364462, Phase: 1.03590060915, Freq: 33.67961751290},
			{Amp: 0.00002284800, Phase: 4.20606949415, Freq: 4.45341812490},
			{Amp: 0.00001433512, Phase: 2.78340432711, Freq: 74.78159856730},
			{Amp: 0.00000900240, Phase: 2.07606702418, Freq: 109.94568878850},
			{Amp: 0.00000744996, Phase: 3.19032530145, Freq: 71.81265315070},
			{Amp: 0.00000506206, Phase: 5.74785370252, Freq: 114.39910691340},
			{Amp: 0.00000399552, Phase: 0.34972342569, Freq: 1021.24889455140},
			{Amp: 0.00000345195, Phase: 3.46186210169, Freq: 41.10198105440},
			{Amp: 0.00000306338, Phase: 0.49684039897, Freq: 0.52126486180},
			{Amp: 0.00000287322, Phase: 4.50523446022, Freq: 0.04818410980},
			{Amp: 0.00000323004, Phase: 2.24815188609, Freq: 32.19514480460},
			{Amp: 0.00000340323, Phase: 3.30369900416, Freq: 77.75054398390},
			{Amp: 0.00000266605, Phase: 4.88932609483, Freq: 0.96320784650},
			{Amp: 0.00000227079, Phase: 1.79713054538, Freq: 453.42489381900},
			{Amp: 0.00000244722, Phase: 1.24693337933, Freq: 9.56122755560},
			{Amp: 0.00000232887, Phase: 2.50459795017, Freq: 137.03302416240},
			{Amp: 0.00000282170, Phase: 2.24565579693, Freq: 146.59425171800},
			{Amp: 0.00000251941, Phase: 5.78166597292, Freq: 388.46515523820},
			{Amp: 0.00000150180, Phase: 2.99706110414, Freq: 5.93789083320},
		},
		{ // L1
			{Amp: 38.37687716731, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00016604172, Phase: 4.86323329249, Freq: 1.48447270830},
			{Amp: 0.00015744045, Phase: 2.27887427527, Freq: 38.13303563780},
			{Amp: 0.00001306261, Phase: 3.67283710154, Freq: 2.96894541660},
			{Amp: 0.00000604842, Phase: 1.50487700425, Freq: 35.16409022120},
			{Amp: 0.00000178624, Phase: 3.45264733373, Freq: 39.61750834610},
			{Amp: 0.00000106644, Phase: 2.45148213255, Freq: 37.61177077600},
			{Amp: 0.00000105945, Phase: 2.75488705116, Freq: 0.52126486180},
			{Amp: 0.00000072828, Phase: 5.48724732699, Freq: 36.64856292950},
			{Amp: 0.00000057794, Phase: 5.21480395549, Freq: 0.04818410980},
		},
		{ // L2
			{Amp: 0.00000286136, Phase: 1.18985661922, Freq: 38.13303563780},
			{Amp: 0.00000295720, Phase: 1.85520292248, Freq: 1.48447270830},
			{Amp: 0.00000102433, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000022613, Phase: 1.21060882957, Freq: 2.96894541660},
			{Amp: 0.00000009976, Phase: 5.31574286271, Freq: 36.64856292950},
		},
		{ // L3
			{Amp: 0.00000120476, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000011014, Phase: 3.14159265359, Freq: 0.00000000000},
		},
		{ // L4
			{Amp: 0.00000000113, Phase: 4.70566676794, Freq: 38.13303563780},
		},
		{ // L5
			{Amp: 0.00000000003, Phase: 3.14159265359, Freq: 0.00000000000},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.03088622933, Phase: 1.44104372644, Freq: 38.13303563780},
			{Amp: 0.00027780087, Phase: 5.91271884599, Freq: 76.26607127560},
			{Amp: 0.00027623609, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00015355489, Phase: 2.52123799551, Freq: 36.64856292950},
			{Amp: 0.00015448133, Phase: 3.50877079215, Freq: 39.61750834610},
			{Amp: 0.00001999918, Phase: 1.50998668632, Freq: 74.78159856730},
			{Amp: 0.00001967021, Phase: 4.37778196626, Freq: 1.48447270830},
			{Amp: 0.00001015137, Phase: 3.21560997434, Freq: 35.16409022120},
			{Amp: 0.00000605767, Phase: 2.80246601405, Freq: 73.29712585900},
			{Amp: 0.00000594878, Phase: 2.12892708114, Freq: 41.10198105440},
			{Amp: 0.00000588805, Phase: 3.18655882497, Freq: 2.96894541660},
			{Amp: 0.00000401830, Phase: 4.16883287600, Freq: 114.39910691340},
			{Amp: 0.00000254333, Phase: 3.27120499438, Freq: 453.42489381900},
			{Amp: 0.00000261647, Phase: 3.76722704749, Freq: 213.29909543800},
			{Amp: 0.00000279964, Phase: 1.68165309699, Freq: 77.75054398390},
			{Amp: 0.00000205590, Phase: 4.25652348864, Freq: 529.69096509460},
			{Amp: 0.00000140455, Phase: 3.52969556376, Freq: 137.03302416240},
		},
		{ // B1
			{Amp: 0.00227279214, Phase: 3.80793089870, Freq: 38.13303563780},
			{Amp: 0.00001803120, Phase: 1.97576485377, Freq: 76.26607127560},
			{Amp: 0.00001385733, Phase: 4.82555548018, Freq: 36.64856292950},
			{Amp: 0.00001433300, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00001073298, Phase: 6.08054240712, Freq: 39.61750834610},
			{Amp: 0.00000147903, Phase: 3.85766231348, Freq: 74.78159856730},
			{Amp: 0.00000136448, Phase: 0.47764957338, Freq: 1.48447270830},
			{Amp: 0.00000070285, Phase: 6.18782052139, Freq: 35.16409022120},
		},
		{ // B2
			{Amp: 0.00009690766, Phase: 5.57123750291, Freq: 38.13303563780},
			{Amp: 0.00000078815, Phase: 3.62705474219, Freq: 76.26607127560},
			{Amp: 0.00000071523, Phase: 0.45476688580, Freq: 36.64856292950},
			{Amp: 0.00000058646, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000029915, Phase: 1.60671721861, Freq: 39.61750834610},
		},
		{ // B3
			{Amp: 0.00000273423, Phase: 1.01688979919, Freq: 38.13303563780},
			{Amp: 0.00000002274, Phase: 2.36805657126, Freq: 36.64856292950},
			{Amp: 0.00000002029, Phase: 5.33364321342, Freq: 76.26607127560},
		},
		{ // B4
			{Amp: 0.00000005728, Phase: 2.66872693322, Freq: 38.13303563780},
		},
		{ // B5
			{Amp: 0.00000000113, Phase: 4.70646877989, Freq: 38.13303563780},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 30.07013205828, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.27062259632, Phase: 1.32999459377, Freq: 38.13303563780},
			{Amp: 0.01691764014, Phase: 3.25186135653, Freq: 36.64856292950},
			{Amp: 0.00807830553, Phase: 5.18592878704, Freq: 1.48447270830},
			{Amp: 0.00537760510, Phase: 4.52113935896, Freq: 35.16409022120},
			{Amp: 0.00495725141, Phase: 1.57105641650, Freq: 491.55792945680},
			{Amp: 0.00274571975, Phase: 1.84552258866, Freq: 175.16605980020},
			{Amp: 0.00012012320, Phase: 1.92059384991, Freq: 1021.24889455140},
			{Amp: 0.00121801746, Phase: 5.79754470298, Freq: 76.26607127560},
			{Amp: 0.00100896068, Phase: 0.37702724930, Freq: 73.29712585900},
			{Amp: 0.00135134092, Phase: 3.37220609835, Freq: 39.61750834610},
			{Amp: 0.00007571796, Phase: 1.07149207335, Freq: 388.46515523820},
			{Amp: 0.00049776100, Phase: 5.74942301406, Freq: 33.67961751290},
			{Amp: 0.00032402600, Phase: 2.16250652689, Freq: 70.84944530420},
			{Amp: 0.00027049853, Phase: 0.18372429482, Freq: 491.60984735270},
			{Amp: 0.00017993931, Phase: 1.16376461851, Freq: 74.78159856730},
			{Amp: 0.00016604976, Phase: 4.55487885320, Freq: 76.31403566460},
			{Amp: 0.00015046512, Phase: 4.83941423015, Freq: 41.10198105440},
			{Amp: 0.00014348879, Phase: 1.07918783235, Freq: 74.83376264350},
			{Amp: 0.00012285860, Phase: 1.01944240588, Freq: 109.94568878850},
			{Amp: 0.00011210993, Phase: 5.96992526408, Freq: 77.75054398390},
			{Amp: 0.00009094575, Phase: 2.07087417674, Freq: 114.39910691340},
			{Amp: 0.00008317822, Phase: 3.21426924142, Freq: 0.04818410980},
			{Amp: 0.00007460690, Phase: 1.29416220375, Freq: 453.42489381900},
			{Amp: 0.00005069374, Phase: 5.79229435840, Freq: 4.45341812490},
		},
		{ // R1
			{Amp: 0.00236338502, Phase: 0.70498011235, Freq: 38.13303563780},
			{Amp: 0.00013220279, Phase: 3.32015499895, Freq: 1.48447270830},
			{Amp: 0.00008621863, Phase: 6.21628951630, Freq: 35.16409022120},
			{Amp: 0.00002701740, Phase: 0.18044653212, Freq: 39.61750834610},
			{Amp: 0.00002153150, Phase: 5.16873840979, Freq: 76.26607127560},
			{Amp: 0.00002154735, Phase: 2.09431198086, Freq: 2.96894541660},
			{Amp: 0.00001463924, Phase: 1.18417031047, Freq: 33.67961751290},
			{Amp: 0.00001603165, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00001135773, Phase: 3.91891199655, Freq: 36.64856292950},
			{Amp: 0.00000897650, Phase: 5.24122933533, Freq: 388.46515523820},
		},
		{ // R2
			{Amp: 0.00004247412, Phase: 5.89910679117, Freq: 38.13303563780},
			{Amp: 0.00000217570, Phase: 0.34581829080, Freq: 1.48447270830},
			{Amp: 0.00000163025, Phase: 2.23872947130, Freq: 168.05251279940},
			{Amp: 0.00000156285, Phase: 4.59414467342, Freq: 182.27960680100},
			{Amp: 0.00000117940, Phase: 5.10295026024, Freq: 484.44438245600},
			{Amp: 0.00000112429, Phase: 1.19000583596, Freq: 498.67147645760},
		},
		{ // R3
			{Amp: 0.00000166297, Phase: 4.55243893489, Freq: 38.13303563780},
			{Amp: 0.00000022380, Phase: 3.94830879358, Freq: 175.16605980020},
			{Amp: 0.00000021348, Phase: 2.86296778794, Freq: 168.05251279940},
			{Amp: 0.00000016233, Phase: 0.54226725872, Freq: 484.44438245600},
			{Amp: 0.00000015623, Phase: 5.75702251906, Freq: 182.27960680100},
		},
		nil, // R4 unpopulated for Neptune
	},
}
